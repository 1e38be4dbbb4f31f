package audit

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger grava a trilha de auditoria como JSON lines num arquivo local.
// É aqui que fica o sinal que distingue uma cobrança real de um fallback
// mock — a resposta HTTP é idêntica nos dois casos.
type Logger struct {
	path string
	mu   sync.Mutex
}

type record struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id,omitempty"`
	Metadata any       `json:"metadata,omitempty"`
}

func New(path string) *Logger {
	return &Logger{path: path}
}

func (l *Logger) Log(action, entity, entityID string, metadata any) error {
	rec := record{
		ID:       uuid.NewString(),
		Time:     time.Now().UTC(),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metadata,
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(line)
	return err
}
