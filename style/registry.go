package style

import (
	"fmt"
	"sort"
)

// Names of the styles the engine looks for.
const (
	NormalName        = "Normal"
	TitleName         = "Title"
	SubtitleName      = "Subtitle"
	ListBulletName    = "List Bullet"
	ListParagraphName = "List Paragraph"
	StrongName        = "Strong"
)

// DefaultBody is the ambient style used when no Normal style has been registered.
var DefaultBody = StyleSpec{
	Name:       NormalName,
	FontFamily: "Calibri",
	SizePt:     11,
	Color:      Black,
	Alignment:  AlignLeft,
}

// Registry maps style names to specs.
type Registry struct {
	specs  map[string]StyleSpec
	sealed bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]StyleSpec)}
}

// Register adds spec under spec.Name. Registering a name twice fails with
// *DuplicateStyleError and leaves the first registration in place.
func (r *Registry) Register(spec StyleSpec) error {
	if r.sealed {
		return fmt.Errorf("registering %q: %w", spec.Name, ErrRegistrySealed)
	}
	if err := spec.Validate(); err != nil {
		return err
	}
	if _, ok := r.specs[spec.Name]; ok {
		return &DuplicateStyleError{Name: spec.Name}
	}
	r.specs[spec.Name] = spec
	return nil
}

// Resolve returns the spec registered under name.
func (r *Registry) Resolve(name string) (StyleSpec, error) {
	spec, ok := r.specs[name]
	if !ok {
		return StyleSpec{}, &UnknownStyleError{Name: name}
	}
	return spec, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.specs[name]
	return ok
}

// Len returns the number of registered styles.
func (r *Registry) Len() int {
	return len(r.specs)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Specs returns all registered specs sorted by name.
func (r *Registry) Specs() []StyleSpec {
	names := r.Names()
	specs := make([]StyleSpec, len(names))
	for i, name := range names {
		specs[i] = r.specs[name]
	}
	return specs
}

// Default returns the ambient body style: the registered Normal style, or
// DefaultBody when none is registered.
func (r *Registry) Default() StyleSpec {
	if spec, ok := r.specs[NormalName]; ok {
		return spec
	}
	return DefaultBody
}

// ResolveOrDefault returns the named style, or the ambient default for an empty
// or unregistered name.
func (r *Registry) ResolveOrDefault(name string) StyleSpec {
	if spec, ok := r.specs[name]; ok {
		return spec
	}
	return r.Default()
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// HeadingStyleName returns the style name for a heading level: 0 is the
// document title, 1-9 are "Heading 1" through "Heading 9".
func HeadingStyleName(level int) string {
	if level == 0 {
		return TitleName
	}
	return fmt.Sprintf("Heading %d", level)
}

// RegisterAll registers specs in order and stops at the first failure.
func RegisterAll(r *Registry, specs ...StyleSpec) error {
	for _, spec := range specs {
		if err := r.Register(spec); err != nil {
			return err
		}
	}
	return nil
}
