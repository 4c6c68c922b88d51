// Package fieldwise applies full or partial JSON documents to typed model
// instances: only declared updatable fields are touched, per-field and
// whole-object validation is enforced, and every call reports exactly one of
// changed field paths, an ordered failure list, or "no changes".
package fieldwise

import "github.com/fieldwise/fieldwise/schema"

// Model is the capability that makes a type updatable: a fixed
// field-descriptor table. The engine never constructs models; callers do.
type Model interface {
	Spec() *schema.Spec
}

// Cloner enables copy-and-swap application via ApplyClone. CloneModel must
// deep-copy nested models so the copy is exclusively held.
type Cloner interface {
	Model
	CloneModel() Model
}

// Updated is an optional side-effect hook, e.g. a timestamp bump. It runs
// exactly once after a successful call and never on Error or NoChanges.
type Updated interface {
	Updated(changed []string)
}
