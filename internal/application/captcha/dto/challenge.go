package dto

import (
	"ringgate/internal/domain/captcha"
	"ringgate/internal/shared/biztime"
)

// ShapeDTO is one ring as rendered by the storefront client.
type ShapeDTO struct {
	X           int  `json:"x"`
	Y           int  `json:"y"`
	Radius      int  `json:"radius"`
	IsBroken    bool `json:"isBroken"`
	GapRotation int  `json:"gapRotation"`
}

// ChallengeDTO is the client-facing challenge payload. The solution index
// itself is withheld; only the geometry is returned.
type ChallengeDTO struct {
	SessionID string     `json:"sessionId"`
	Shapes    []ShapeDTO `json:"shapes"`
	ExpiresAt string     `json:"expiresAt"`
}

// VerifyResultDTO is the outcome of a verification attempt.
type VerifyResultDTO struct {
	Verified          bool   `json:"verified"`
	Token             string `json:"token,omitempty"`
	AttemptsRemaining int    `json:"attemptsRemaining"`
}

// ToChallengeDTO builds the challenge payload from a persisted session and
// its generated puzzle.
func ToChallengeDTO(session *captcha.ChallengeSession, puzzle captcha.Puzzle) *ChallengeDTO {
	shapes := make([]ShapeDTO, len(puzzle.Shapes))
	for i, s := range puzzle.Shapes {
		shapes[i] = ShapeDTO{
			X:           s.X,
			Y:           s.Y,
			Radius:      s.Radius,
			IsBroken:    s.Broken,
			GapRotation: s.GapRotation,
		}
	}
	return &ChallengeDTO{
		SessionID: session.ID,
		Shapes:    shapes,
		ExpiresAt: biztime.FormatRFC3339(session.ExpiresAt),
	}
}
