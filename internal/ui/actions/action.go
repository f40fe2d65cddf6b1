// Package actions defines the command protocol between key bindings and
// components. Keys resolve through a per-scope ActionMap loaded from config;
// components react to InvokeActionMsg by action id.
package actions

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Action struct {
	Id   string `toml:"id"`
	Desc string `toml:"desc,omitempty"`
}

func (a *Action) UnmarshalTOML(data any) error {
	switch value := data.(type) {
	case string:
		a.Id = value
	case map[string]interface{}:
		if id, ok := value["id"].(string); ok {
			a.Id = id
		}
		if desc, ok := value["desc"].(string); ok {
			a.Desc = desc
		}
	}
	return nil
}

type ActionBinding struct {
	On []string `toml:"on"`
	Do Action   `toml:"do"`
}

func (ab *ActionBinding) UnmarshalTOML(data any) error {
	value, ok := data.(map[string]interface{})
	if !ok {
		return nil
	}
	if on, ok := value["on"]; ok {
		switch v := on.(type) {
		case string:
			ab.On = []string{v}
		case []interface{}:
			ab.On = make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					ab.On = append(ab.On, s)
				}
			}
		}
	}
	if do, ok := value["do"]; ok {
		return ab.Do.UnmarshalTOML(do)
	}
	return nil
}

type ActionMap struct {
	Bindings []ActionBinding
}

func (am *ActionMap) UnmarshalTOML(data any) error {
	value, ok := data.([]interface{})
	if !ok {
		return nil
	}
	am.Bindings = make([]ActionBinding, 0, len(value))
	for _, v := range value {
		binding := ActionBinding{}
		if err := binding.UnmarshalTOML(v); err != nil {
			return err
		}
		am.Bindings = append(am.Bindings, binding)
	}
	return nil
}

func (am ActionMap) Get(key string) (*ActionBinding, bool) {
	for i := range am.Bindings {
		binding := &am.Bindings[i]
		for _, on := range binding.On {
			if on == key {
				return binding, true
			}
		}
	}
	return nil, false
}

type InvokeActionMsg struct {
	Action Action
}

func Invoke(action Action) tea.Cmd {
	return func() tea.Msg {
		return InvokeActionMsg{Action: action}
	}
}
