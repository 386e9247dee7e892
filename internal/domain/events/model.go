package events

import "time"

// Event es un evento de una entidad (kaupapa).
//
// Date es YYYY-MM-DD sin zona horaria; StartTime/EndTime son HH:mm opcionales
// ("" = sin hora). Se comparan como strings a propósito: el orden lexicográfico
// coincide con el cronológico y evita parsear zonas horarias.
type Event struct {
	ID string

	Title       string
	Description string
	Location    string

	Date      string
	StartTime string
	EndTime   string

	// EntityID lo fija el store al crear (actor) y no cambia nunca.
	EntityID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllDay indica que el evento no tiene hora de inicio.
func (e Event) AllDay() bool {
	return e.StartTime == ""
}

// IsMine indica si el actor es dueño del evento (la UI lo usa para habilitar edición).
func IsMine(e Event, actorID string) bool {
	return e.EntityID == actorID
}
