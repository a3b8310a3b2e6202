package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/volunteer/internal/client/models"
	"github.com/dmitrijs2005/volunteer/internal/client/store"
)

// SlotProfile is a ProfileRepository stored as one JSON object.
type SlotProfile struct {
	st      store.Store
	profile *models.Profile
}

func NewProfile(st store.Store) *SlotProfile {
	return &SlotProfile{st: st}
}

func (r *SlotProfile) Load(ctx context.Context) error {
	raw, err := r.st.Get(ctx, store.SlotProfile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	r.profile = nil
	if raw == nil {
		return nil
	}

	var p *models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("failed to decode profile: %w", err)
	}
	r.profile = p
	return nil
}

func (r *SlotProfile) Get() (models.Profile, bool) {
	if r.profile == nil {
		return models.Profile{}, false
	}
	p := *r.profile
	p.Interests = append([]models.Interest(nil), r.profile.Interests...)
	return p, true
}

func (r *SlotProfile) Set(ctx context.Context, p models.Profile) error {
	p.Interests = append([]models.Interest(nil), p.Interests...)

	b, err := json.Marshal(&p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := r.st.Set(ctx, store.SlotProfile, b); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	r.profile = &p
	return nil
}
