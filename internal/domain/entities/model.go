package entities

// Entity es un grupo (kaupapa) que coordina sus propios eventos.
// Color es solo un hint de presentación; el core no lo interpreta.
type Entity struct {
	ID    string
	Name  string
	Color string
}
