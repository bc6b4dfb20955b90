package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"log"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var helpFS embed.FS

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

func parseHelpTemplates() {
	helpTmpl = template.Must(template.New("").Funcs(map[string]any{
		"flags": func(fs *flag.FlagSet) []flagInfo {
			result := []flagInfo{}
			if fs == nil {
				return result
			}
			fs.VisitAll(func(f *flag.Flag) {
				result = append(result, flagInfo{f.Name, f.DefValue, f.Usage})
			})
			return result
		},
	}).ParseFS(helpFS, "templates/*.txt"))
}

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

// HelpData is what a help template is rendered with.
type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

// UsageError reports incorrect invocation; its message is the help text of
// the command that was misused.
type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	return help
}

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	if err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of); err != nil {
		log.Printf("error rendering help template: %v", err)
		return "", err
	}
	return buf.String(), nil
}

func usageFunc(h HelpData) func() {
	return func() {
		out := h.FlagSet().Output()
		fmt.Fprint(out, (&UsageError{of: h}).Error())
	}
}

func (r *root) Template() string { return "root.txt" }

func (e *editCmd) Template() string { return "edit.txt" }

func (n *newCmd) Template() string { return "new.txt" }

func (d *drawCmd) Template() string { return "draw.txt" }

func (i *infoCmd) Template() string { return "info.txt" }

func (v *viewCmd) Template() string { return "view.txt" }

func (p *paletteCmd) Template() string { return "palette.txt" }

func (g *grabCmd) Template() string { return "grab.txt" }

func (i *interactiveCmd) Template() string { return "interactive.txt" }

func (c *configCmd) Template() string { return "config.txt" }

func (v *versionCmd) Template() string { return "version.txt" }
