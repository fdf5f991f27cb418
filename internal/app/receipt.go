package app

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/form3tech-oss/jwt-go"
	"github.com/google/uuid"
)

var (
	ErrReceiptsDisabled = errors.New("receipt signing is not configured")
	ErrInvalidReceipt   = errors.New("invalid simulation receipt")
)

// DefaultReceiptTTL is how long a signed receipt stays verifiable.
const DefaultReceiptTTL = 24 * time.Hour

// ReceiptClaims is the signed summary of a batch.
type ReceiptClaims struct {
	ID        string         `json:"jti"`
	Issuer    string         `json:"iss"`
	ExpiresAt int64          `json:"exp"`
	Seed      int64          `json:"seed"`
	Games     int            `json:"games"`
	Players   []string       `json:"players"`
	ColdStart bool           `json:"cold_start"`
	Wins      map[string]int `json:"wins"`
}

// ReceiptSigner issues HS256 tokens that let a client prove which batch
// produced a report.
type ReceiptSigner struct {
	secret string
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewReceiptSigner(secret, issuer string) *ReceiptSigner {
	return &ReceiptSigner{
		secret: secret,
		issuer: issuer,
		ttl:    DefaultReceiptTTL,
		now:    time.Now,
	}
}

// Enabled reports whether the signer has what it needs to sign.
func (s *ReceiptSigner) Enabled() bool {
	return s != nil && s.secret != "" && s.issuer != ""
}

// Sign issues a receipt for report.
func (s *ReceiptSigner) Sign(report Report, coldStart bool) (string, error) {
	if !s.Enabled() {
		return "", ErrReceiptsDisabled
	}

	players := make([]interface{}, len(report.Players))
	wins := make(map[string]interface{}, len(report.Players))
	for i, p := range report.Players {
		players[i] = p.Name
		wins[p.Name] = p.Wins
	}

	claims := jwt.MapClaims{
		"iss":        s.issuer,
		"jti":        uuid.NewString(),
		"exp":        s.now().Add(s.ttl).Unix(),
		"seed":       strconv.FormatInt(report.Seed, 10),
		"games":      report.Games,
		"players":    players,
		"cold_start": coldStart,
		"wins":       wins,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify checks the signature, signing method, issuer and expiry of a receipt.
func (s *ReceiptSigner) Verify(receipt string) (ReceiptClaims, error) {
	if !s.Enabled() {
		return ReceiptClaims{}, ErrReceiptsDisabled
	}
	if receipt == "" {
		return ReceiptClaims{}, fmt.Errorf("%w: empty receipt", ErrInvalidReceipt)
	}

	token, err := jwt.Parse(receipt, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return ReceiptClaims{}, fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ReceiptClaims{}, ErrInvalidReceipt
	}
	if !mc.VerifyIssuer(s.issuer, true) {
		return ReceiptClaims{}, fmt.Errorf("%w: wrong issuer", ErrInvalidReceipt)
	}

	return claimsFromMap(mc)
}

func claimsFromMap(mc jwt.MapClaims) (ReceiptClaims, error) {
	var c ReceiptClaims
	c.ID, _ = mc["jti"].(string)
	c.Issuer, _ = mc["iss"].(string)
	if exp, ok := mc["exp"].(float64); ok {
		c.ExpiresAt = int64(exp)
	}
	if seed, ok := mc["seed"].(string); ok {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return ReceiptClaims{}, fmt.Errorf("%w: bad seed %q", ErrInvalidReceipt, seed)
		}
		c.Seed = n
	}
	if games, ok := mc["games"].(float64); ok {
		c.Games = int(games)
	}
	c.ColdStart, _ = mc["cold_start"].(bool)
	if players, ok := mc["players"].([]interface{}); ok {
		for _, p := range players {
			if name, ok := p.(string); ok {
				c.Players = append(c.Players, name)
			}
		}
	}
	if wins, ok := mc["wins"].(map[string]interface{}); ok {
		c.Wins = make(map[string]int, len(wins))
		for name, w := range wins {
			if n, ok := w.(float64); ok {
				c.Wins[name] = int(n)
			}
		}
	}
	return c, nil
}
