package view

type Scope string

const (
	ScopeNone Scope = ""
	ScopeUI   Scope = "ui"
	ScopeLog  Scope = "log"
)
