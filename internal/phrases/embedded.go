package phrases

import (
	"context"
	_ "embed"

	"github.com/f3rmion/fourzi/internal/fourzi"
)

//go:embed data/idioms.yaml
var idiomsYAML []byte

type embeddedLoader struct{}

// Embedded returns a loader for the built-in idiom list.
func Embedded() Loader {
	return embeddedLoader{}
}

func (embeddedLoader) LoadPhrases(context.Context) (fourzi.Pool, error) {
	pool, err := ParseYAML(idiomsYAML)
	if err != nil {
		return nil, err
	}
	return nonEmpty(pool, "built-in list")
}
