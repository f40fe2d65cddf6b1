package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hack3ric/termscp/internal/config"
	"github.com/hack3ric/termscp/internal/ui"
	"github.com/hack3ric/termscp/internal/ui/common"
	"github.com/hack3ric/termscp/internal/ui/log"
)

func main() {
	debug := flag.Bool("debug", false, "write a debug log to debug.log")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		// Bad user config degrades to defaults.
		fmt.Fprintln(os.Stderr, "config:", err)
	}
	config.Current = cfg
	common.DefaultPalette.Update(cfg.Colors)

	p := tea.NewProgram(ui.New(), tea.WithAltScreen())

	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		go feedStdin(p)
	} else {
		go feedSample(p)
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func feedStdin(p *tea.Program) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.Send(ui.AppendRecordMsg{Record: parseRecord(line)})
	}
}

func parseRecord(line string) log.Record {
	level := log.LevelInfo
	switch {
	case strings.HasPrefix(line, "ERROR"):
		level = log.LevelError
	case strings.HasPrefix(line, "WARN"):
		level = log.LevelWarn
	}
	return log.Record{Time: time.Now(), Level: level, Message: line}
}

func feedSample(p *tea.Program) {
	sample := []log.Record{
		{Level: log.LevelInfo, Message: "Connected to sftp://localhost:22"},
		{Level: log.LevelInfo, Message: "Changed directory on remote: /home/demo"},
		{Level: log.LevelInfo, Message: "Uploading \"report.pdf\" (1.2 MB)"},
		{Level: log.LevelWarn, Message: "Remote file \"report.pdf\" already exists, overwriting"},
		{Level: log.LevelInfo, Message: "Saved file \"/home/demo/report.pdf\""},
		{Level: log.LevelError, Message: "Could not stat \"missing.txt\": no such file"},
		{Level: log.LevelInfo, Message: "Downloading \"archive.tar.gz\" (48 MB)"},
		{Level: log.LevelInfo, Message: "Transfer completed in 12.4s"},
	}
	for _, rec := range sample {
		rec.Time = time.Now()
		p.Send(ui.AppendRecordMsg{Record: rec})
		time.Sleep(150 * time.Millisecond)
	}
}
