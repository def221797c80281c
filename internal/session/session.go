package session

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/hydromatic/morel-core/internal/describe"
)

// PlanFormat selects how Session.Plan renders the previous
// statement's compiled tree for `Sys.plan`.
type PlanFormat int

const (
	PlanText PlanFormat = iota
	PlanYAML
)

// ShellFunc is the callback the `use` built-in invokes to hand a file
// path to the external shell collaborator for interpretation; the
// evaluator core never reads files itself.
type ShellFunc func(path string) error

// Session carries everything the evaluator core's collaborators need
// but the core itself never inspects: the property bag, the most
// recently compiled plan (for Sys.plan), and the use-file callback.
type Session struct {
	Config Config

	props    map[string]string
	lastPlan describe.Describable
	shell    ShellFunc
}

func New(cfg Config, shell ShellFunc) *Session {
	return &Session{Config: cfg, props: map[string]string{}, shell: shell}
}

// Get implements Sys.env: a property set via Set, or else the typed
// Config field of the same name if one exists, or else the
// Config.Overlay entry of that name; it reports false when none of
// them has the name.
func (s *Session) Get(name string) (string, bool) {
	if v, ok := s.props[name]; ok {
		return v, true
	}
	switch name {
	case "PRINT_DEPTH":
		return strconv.Itoa(s.Config.PrintDepth), true
	case "PRINT_LENGTH":
		return strconv.Itoa(s.Config.PrintLength), true
	case "STRING_DEPTH":
		return strconv.Itoa(s.Config.StringDepth), true
	case "LINE_WIDTH":
		return strconv.Itoa(s.Config.LineWidth), true
	case "MATCH_COVERAGE_ENABLED":
		return strconv.FormatBool(s.Config.MatchCoverageEnabled), true
	case "HYBRID":
		return strconv.FormatBool(s.Config.Hybrid), true
	case "RELATIONALIZE":
		return strconv.FormatBool(s.Config.Relationalize), true
	case "INLINE_PASS_COUNT":
		return strconv.Itoa(s.Config.InlinePassCount), true
	default:
		if v, ok := s.Config.Overlay[name]; ok {
			return v, true
		}
		return "", false
	}
}

// Set implements Sys.set.
func (s *Session) Set(name, value string) { s.props[name] = value }

// Unset implements Sys.unset.
func (s *Session) Unset(name string) { delete(s.props, name) }

// RecordPlan stashes the Describable compiled for the statement just
// run, so a following `Sys.plan` call can render it.
func (s *Session) RecordPlan(d describe.Describable) { s.lastPlan = d }

// Plan renders the last recorded compiled tree for `Sys.plan`. The
// rowCount annotation uses go-humanize so a plan fixture reads
// "12 rows" rather than a bare integer.
func (s *Session) Plan(format PlanFormat, rowCount int) (string, error) {
	if s.lastPlan == nil {
		return "", nil
	}
	d := &describe.Describer{}
	s.lastPlan.Describe(d)
	var body string
	switch format {
	case PlanYAML:
		y, err := d.YAML()
		if err != nil {
			return "", err
		}
		body = y
	default:
		body = d.String()
	}
	return body + "\n# " + humanize.Comma(int64(rowCount)) + " rows\n", nil
}

// Use invokes the shell callback for the `use` built-in.
func (s *Session) Use(path string) error {
	if s.shell == nil {
		return nil
	}
	return s.shell(path)
}
