package events

const (
	dayStart = "00:00"
	dayEnd   = "23:59"
)

// ClashQuery es el rango candidato a chequear.
type ClashQuery struct {
	Date           string
	StartTime      string
	EndTime        string
	ExcludeEventID string
}

// DetectClashes devuelve los eventos de otras entidades que chocan con el
// candidato, en el orden de pool. Es un aviso: nunca bloquea el guardado.
//
// Reglas:
//   - solo eventos cuyo EntityID != actorID, y distinto de ExcludeEventID
//   - misma fecha exacta (no hay eventos multi-día)
//   - si el candidato o el existente no tienen hora de inicio, es clash (día completo)
//   - si no, intervalo semiabierto: start < otherEnd && end > otherStart
//     (hora faltante = 00:00 / 23:59 solo para comparar; tocarse no es clash)
func DetectClashes(pool []Event, actorID string, q ClashQuery) []Event {
	out := make([]Event, 0)
	for _, e := range pool {
		if e.EntityID == actorID {
			continue
		}
		if q.ExcludeEventID != "" && e.ID == q.ExcludeEventID {
			continue
		}
		if e.Date != q.Date {
			continue
		}
		if clashes(q.StartTime, q.EndTime, e) {
			out = append(out, e)
		}
	}
	return out
}

func clashes(start, end string, other Event) bool {
	if start == "" || other.AllDay() {
		return true
	}
	return Overlaps(start, end, other.StartTime, other.EndTime)
}

// Overlaps compara dos rangos HH:mm del mismo día con semántica semiabierta.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	aStart, aEnd = withDefaults(aStart, aEnd)
	bStart, bEnd = withDefaults(bStart, bEnd)
	return aStart < bEnd && aEnd > bStart
}

func withDefaults(start, end string) (string, string) {
	if start == "" {
		start = dayStart
	}
	if end == "" {
		end = dayEnd
	}
	return start, end
}
