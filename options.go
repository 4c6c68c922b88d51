package fieldwise

import "github.com/fieldwise/fieldwise/schema"

type ApplyConfig struct {
	FailFast    bool
	Check       schema.CheckFunc
	AfterUpdate func(changed []string)
}

type ApplyOpt func(*ApplyConfig)

// FailFast switches from accumulate-all-failures to stop-at-first-failure:
// once a field has failed, remaining fields are neither validated nor
// mutated. Rules within a single field still all run.
func FailFast(v bool) ApplyOpt {
	return func(c *ApplyConfig) { c.FailFast = v }
}

// ObjectCheck adds a caller-supplied whole-object validation, run after the
// spec's own.
func ObjectCheck(f schema.CheckFunc) ApplyOpt {
	return func(c *ApplyConfig) { c.Check = f }
}

// AfterUpdate adds a caller-supplied post-update hook, run after the model's
// own Updated capability.
func AfterUpdate(f func(changed []string)) ApplyOpt {
	return func(c *ApplyConfig) { c.AfterUpdate = f }
}
