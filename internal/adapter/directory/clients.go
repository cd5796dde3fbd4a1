package directory

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/sectorflow/demand-service/internal/domain"
)

// ServiceClients names the client directory in upstream errors.
const ServiceClients = "clients"

// Clients reads the client directory.
type Clients struct {
	getter httpGetter
}

// NewClients creates a client directory adapter rooted at baseURL.
func NewClients(baseURL string, timeout time.Duration, logger *slog.Logger) *Clients {
	return &Clients{getter: newGetter(ServiceClients, baseURL, timeout, logger)}
}

type clientDTO struct {
	ID       string            `json:"_id"`
	Name     string            `json:"name"`
	Features []json.RawMessage `json:"features"`
}

// Clients returns every client visible to the caller's token.
func (c *Clients) Clients(ctx context.Context) ([]domain.Client, error) {
	var dtos []clientDTO
	if err := c.getter.get(ctx, "/clients", &dtos); err != nil {
		return nil, err
	}

	clients := make([]domain.Client, 0, len(dtos))
	for _, d := range dtos {
		clients = append(clients, domain.Client{
			ID:       d.ID,
			Name:     d.Name,
			Features: featureIDs(d.Features),
		})
	}
	return clients, nil
}

// featureIDs accepts features either as bare ids or as documents.
func featureIDs(raw []json.RawMessage) []string {
	ids := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				ids = append(ids, s)
			}
			continue
		}

		var doc struct {
			MongoID string `json:"_id"`
			ID      string `json:"id"`
		}
		if err := json.Unmarshal(r, &doc); err != nil {
			continue
		}
		switch {
		case doc.MongoID != "":
			ids = append(ids, doc.MongoID)
		case doc.ID != "":
			ids = append(ids, doc.ID)
		}
	}
	return ids
}
