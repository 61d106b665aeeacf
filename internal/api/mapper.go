package api

import (
	"strings"
	"time"

	"github.com/phrazzld/parky-api/internal/domain"
)

// DateLayout is the wire format of calendar dates such as a park's establishment.
const DateLayout = "2006-01-02"

// Request/response structures

// CreateTrailRequest defines the payload for creating a trail.
type CreateTrailRequest struct {
	Name       string            `json:"name"       validate:"required,max=100"`
	Distance   *float64          `json:"distance"   validate:"required,gte=0"`
	Difficulty domain.Difficulty `json:"difficulty" validate:"required"`
	ParkID     int64             `json:"parkId"     validate:"required,gt=0"`
}

// UpdateTrailRequest defines the payload for replacing a trail. ID must match
// the path.
type UpdateTrailRequest struct {
	ID int64 `json:"id"`
	CreateTrailRequest
}

// TrailResponse is the transfer representation of a trail.
type TrailResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Distance     float64               `json:"distance"`
	Difficulty   domain.Difficulty     `json:"difficulty"`
	ParkID       int64                 `json:"parkId"`
	NationalPark *NationalParkResponse `json:"nationalPark,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// CreateNationalParkRequest defines the payload for creating a park.
type CreateNationalParkRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	State       string `json:"state"       validate:"required,max=100"`
	Picture     string `json:"picture"     validate:"omitempty,max=2048"`
	Established string `json:"established" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateNationalParkRequest defines the payload for replacing a park. ID must
// match the path.
type UpdateNationalParkRequest struct {
	ID int64 `json:"id"`
	CreateNationalParkRequest
}

// NationalParkResponse is the transfer representation of a park.
type NationalParkResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Picture     string    `json:"picture,omitempty"`
	Established string    `json:"established,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AuthenticateRequest defines the payload for the authentication endpoint.
type AuthenticateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// AuthResponse defines the successful response for the authentication endpoint.
type AuthResponse struct {
	UserResponse
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Mapping functions

func trailToResponse(t *domain.Trail) TrailResponse {
	resp := TrailResponse{
		ID:         t.ID,
		Name:       t.Name,
		Distance:   t.Distance,
		Difficulty: t.Difficulty,
		ParkID:     t.NationalParkID,
		CreatedAt:  t.CreatedAt,
	}
	if t.NationalPark != nil {
		park := nationalParkToResponse(t.NationalPark)
		resp.NationalPark = &park
	}
	return resp
}

// trailsToResponse never returns nil so empty collections encode as [].
func trailsToResponse(trails []*domain.Trail) []TrailResponse {
	out := make([]TrailResponse, 0, len(trails))
	for _, t := range trails {
		out = append(out, trailToResponse(t))
	}
	return out
}

func (req *CreateTrailRequest) toDomain(id int64) *domain.Trail {
	var distance float64
	if req.Distance != nil {
		distance = *req.Distance
	}
	trail := &domain.Trail{
		ID:             id,
		Name:           strings.TrimSpace(req.Name),
		Distance:       distance,
		Difficulty:     req.Difficulty,
		NationalParkID: req.ParkID,
	}
	return trail
}

func nationalParkToResponse(p *domain.NationalPark) NationalParkResponse {
	resp := NationalParkResponse{
		ID:        p.ID,
		Name:      p.Name,
		State:     p.State,
		Picture:   p.Picture,
		CreatedAt: p.CreatedAt,
	}
	if p.Established != nil {
		resp.Established = p.Established.Format(DateLayout)
	}
	return resp
}

func nationalParksToResponse(parks []*domain.NationalPark) []NationalParkResponse {
	out := make([]NationalParkResponse, 0, len(parks))
	for _, p := range parks {
		out = append(out, nationalParkToResponse(p))
	}
	return out
}

// toDomain converts the request; the established date was checked by validation.
func (req *CreateNationalParkRequest) toDomain(id int64) (*domain.NationalPark, error) {
	park := &domain.NationalPark{
		ID:      id,
		Name:    strings.TrimSpace(req.Name),
		State:   strings.TrimSpace(req.State),
		Picture: strings.TrimSpace(req.Picture),
	}
	if req.Established != "" {
		established, err := time.Parse(DateLayout, req.Established)
		if err != nil {
			return nil, domain.NewValidationError("established", "must be a date in YYYY-MM-DD format", nil)
		}
		park.Established = &established
	}
	return park, nil
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
