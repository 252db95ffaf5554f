// Command gen-docs writes shell completions and a man page for screenkeeper
// from the flag table in internal/config.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/stigoleg/screen-keeper/internal/config"
	"github.com/stigoleg/screen-keeper/internal/settings"
)

const (
	appName        = "screenkeeper"
	appDescription = "Keeps the screen awake by nudging the pointer or pressing a key on a schedule."
)

// option is one flag as the generators see it. Values, when set, are offered
// as completions for the flag's argument; File asks the shell for a path.
type option struct {
	config.Flag
	Values []string
	File   bool
}

// valueHints adds argument completions for flags with a fixed vocabulary.
var valueHints = map[string]func(*option){
	"action": func(o *option) { o.Values = []string{string(settings.ActionPointer), string(settings.ActionKey)} },
	"key":    func(o *option) { o.Values = []string{"f15", "f14", "f13", "space", "shift"} },
	"config": func(o *option) { o.File = true },
}

func options() []option {
	opts := make([]option, 0, len(config.Flags)+1)
	for _, f := range config.Flags {
		o := option{Flag: f}
		if hint, ok := valueHints[f.Long]; ok {
			hint(&o)
		}
		opts = append(opts, o)
	}
	return append(opts, option{Flag: config.Flag{Long: "help", Short: "h", Usage: "Show help message"}})
}

// Words is every spelling of the flag, short first.
func (o option) Words() []string {
	if o.Short == "" {
		return []string{"--" + o.Long}
	}
	return []string{"-" + o.Short, "--" + o.Long}
}

func (o option) TakesArg() bool { return o.Arg != "" }

// ZshSpec is the _arguments spec for the flag.
func (o option) ZshSpec() string {
	desc := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`).Replace(o.Usage)
	action := ""
	switch {
	case o.File:
		action = ":file:_files"
	case len(o.Values) > 0:
		action = ":" + o.Long + ":(" + strings.Join(o.Values, " ") + ")"
	case o.TakesArg():
		action = ":" + o.Long + ":"
	}
	if o.Short == "" {
		eq := ""
		if o.TakesArg() {
			eq = "="
		}
		return fmt.Sprintf("'--%s%s[%s]%s'", o.Long, eq, desc, action)
	}
	short, long := "-"+o.Short, "--"+o.Long
	if o.TakesArg() {
		short, long = short+"+", long+"="
	}
	return fmt.Sprintf("'(-%s --%s)'{%s,%s}'[%s]%s'", o.Short, o.Long, short, long, desc, action)
}

type docData struct {
	App     string
	Options []option
}

// Words is every flag spelling, space separated.
func (d docData) Words() string {
	var words []string
	for _, o := range d.Options {
		words = append(words, o.Words()...)
	}
	return strings.Join(words, " ")
}

var funcs = template.FuncMap{
	"join":      strings.Join,
	"fishQuote": func(s string) string { return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"` },
}

// completion is one shell's completion script and the file it lands in.
type completion struct {
	file string
	tmpl *template.Template
}

var completions = []completion{
	{
		file: appName + ".bash",
		tmpl: template.Must(template.New("bash").Funcs(funcs).Parse(`# bash completion for {{.App}}
_{{.App}}() {
  local cur="${COMP_WORDS[COMP_CWORD]}"
  local prev="${COMP_WORDS[COMP_CWORD-1]}"
  case "$prev" in
{{- range .Options}}{{if .TakesArg}}
    {{join .Words "|"}})
{{- if .File}}
      COMPREPLY=( $(compgen -f -- "$cur") )
{{- else if .Values}}
      COMPREPLY=( $(compgen -W "{{join .Values " "}}" -- "$cur") )
{{- end}}
      return 0 ;;
{{- end}}{{end}}
  esac
  COMPREPLY=( $(compgen -W "{{.Words}}" -- "$cur") )
}
complete -F _{{.App}} {{.App}}
`)),
	},
	{
		file: "_" + appName,
		tmpl: template.Must(template.New("zsh").Funcs(funcs).Parse(`#compdef {{.App}}

_arguments -s \
{{- range .Options}}
  {{.ZshSpec}} \
{{- end}}
  && return 0
`)),
	},
	{
		file: appName + ".fish",
		tmpl: template.Must(template.New("fish").Funcs(funcs).Parse(`complete -c {{.App}} -f
{{range .Options -}}
complete -c {{$.App}}{{with .Short}} -s {{.}}{{end}} -l {{.Long}}
{{- if .File}} -r -F{{else if .TakesArg}} -x{{end}}
{{- with .Values}} -a {{fishQuote (join . " ")}}{{end}} -d {{fishQuote .Usage}}
{{end -}}
`)),
	},
}

func main() {
	data := docData{App: appName, Options: options()}

	if err := writeCompletions(filepath.Join("docs", "completions"), data); err != nil {
		log.Fatal(err)
	}
	if err := writeMan("man", data); err != nil {
		log.Fatal(err)
	}
}

func writeCompletions(dir string, data docData) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, c := range completions {
		var b strings.Builder
		if err := c.tmpl.Execute(&b, data); err != nil {
			return fmt.Errorf("render %s: %w", c.file, err)
		}
		if err := os.WriteFile(filepath.Join(dir, c.file), []byte(b.String()), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func writeMan(dir string, data docData) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, appName+".1"))
	if err != nil {
		return err
	}
	defer f.Close()
	return renderMan(f, data)
}

func renderMan(w io.Writer, data docData) error {
	var b strings.Builder
	fmt.Fprintf(&b, ".TH \"%s\" \"1\" \"\" \"screen-keeper\" \"User Commands\"\n", strings.ToUpper(data.App))
	fmt.Fprintf(&b, ".SH NAME\n%s \\- %s\n", data.App, appDescription)
	fmt.Fprintf(&b, ".SH SYNOPSIS\n.B %s\n%s\n", data.App, synopsis(data.Options))
	fmt.Fprintf(&b, ".SH DESCRIPTION\n%s\n", appDescription)
	b.WriteString("Settings are kept in settings.yaml under the user configuration directory; flags override them for one run.\n")
	b.WriteString(".SH OPTIONS\n")
	for _, o := range data.Options {
		names := strings.Join(o.Words(), ", ")
		if o.TakesArg() {
			names += " <" + o.Arg + ">"
		}
		fmt.Fprintf(&b, ".TP\n\\fB%s\\fR\n%s\n", roffEscape(names), o.Usage)
		if len(o.Values) > 0 {
			fmt.Fprintf(&b, "Common values: %s.\n", strings.Join(o.Values, ", "))
		}
	}
	b.WriteString(".SH EXAMPLES\n")
	fmt.Fprintf(&b, ".TP\n\\fB%s\\fR\nStart the interactive TUI.\n", data.App)
	fmt.Fprintf(&b, ".TP\n\\fB%s \\-\\-start \\-i 2m\\fR\nNudge the pointer every two minutes.\n", data.App)
	fmt.Fprintf(&b, ".TP\n\\fB%s \\-\\-headless \\-\\-daily 09:00 \\-w 09:00-17:00\\fR\nStart every morning at 09:00 and only act during office hours.\n", data.App)
	b.WriteString(".SH FILES\n.TP\n\\fIsettings.yaml\\fR\nStored settings.\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func synopsis(opts []option) string {
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		names := strings.Join(o.Words(), "|")
		if o.TakesArg() {
			names += " <" + o.Arg + ">"
		}
		parts = append(parts, "["+roffEscape(names)+"]")
	}
	return strings.Join(parts, " ")
}

func roffEscape(s string) string {
	return strings.ReplaceAll(s, "-", "\\-")
}
