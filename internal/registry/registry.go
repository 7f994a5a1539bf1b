package registry

import (
	"log/slog"

	"github.com/mwrona/textops/internal/command"
)

type entry struct {
	caller string
	alias  string
	cmd    command.Command
}

// Registry holds registered commands in insertion order, indexed by both of
// their accepted names. The set is small and fixed after engine construction,
// so lookups stay linear.
type Registry struct {
	entries []entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Add registers cmd under its caller and alias. Registration is idempotent:
// when both names are already present the call is a silent no-op, so
// construction chains can register unconditionally.
func (r *Registry) Add(cmd command.Command) {
	caller, alias := cmd.Caller(), cmd.Alias()

	if r.Exists(caller, alias) {
		slog.Debug("Skipping duplicate command registration.", "caller", caller, "alias", alias)
		return
	}

	r.entries = append(r.entries, entry{caller: caller, alias: alias, cmd: cmd})
}

// ByCaller returns the first command registered under the given caller name.
func (r *Registry) ByCaller(name string) (command.Command, bool) {
	for _, e := range r.entries {
		if e.caller == name {
			return e.cmd, true
		}
	}
	return nil, false
}

// ByAlias returns the first command registered under the given alias name.
func (r *Registry) ByAlias(name string) (command.Command, bool) {
	for _, e := range r.entries {
		if e.alias == name {
			return e.cmd, true
		}
	}
	return nil, false
}

// Exists reports whether the caller name and the alias name are both already
// registered, on whichever entries.
func (r *Registry) Exists(caller, alias string) bool {
	foundCaller := false
	for _, e := range r.entries {
		if e.caller == caller {
			foundCaller = true
			break
		}
	}
	if !foundCaller {
		return false
	}

	for _, e := range r.entries {
		if e.alias == alias {
			return true
		}
	}
	return false
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Callers returns the registered caller names in registration order,
// primarily for startup logging.
func (r *Registry) Callers() []string {
	callers := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		callers = append(callers, e.caller)
	}
	return callers
}
