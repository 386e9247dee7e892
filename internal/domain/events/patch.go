package events

// CreateInput son los campos que aporta quien crea; id, entity y timestamps los pone el store.
type CreateInput struct {
	Title       string
	Description string
	Location    string
	Date        string
	StartTime   string
	EndTime     string
}

// Patch es un update parcial: nil = no tocar.
// Para limpiar una hora se manda un puntero a "".
type Patch struct {
	Title       *string
	Description *string
	Location    *string
	Date        *string
	StartTime   *string
	EndTime     *string
}

// Apply copia campo por campo solo lo presente. ID, EntityID y CreatedAt no son parcheables.
func (p Patch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
}
