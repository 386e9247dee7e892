package seed

import (
	_ "embed"
)

//go:embed demo.yaml
var demoYAML []byte

// Default devuelve el seed demo embebido.
func Default() Seed {
	s, err := Parse(demoYAML)
	if err != nil {
		// demo.yaml es parte del binario; si no parsea es un bug de build.
		panic(err)
	}
	return s
}
