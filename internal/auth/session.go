// Package auth carries the identity of the current console session. The
// original program kept the logged-in user in a process-wide variable; here
// the session is an explicit value issued at login and handed to every
// operation. The token form is a signed HS256 JWT so a persisted session
// is tamper-evident and expires on its own. The role stored in the session
// is advisory only: privileged services re-resolve the role from the store
// before every mutation.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/game-rental-store/internal/model"
)

// Session identifies the authenticated caller of an operation.
type Session struct {
	Login string     // login of the authenticated user
	Role  model.Role // role at login time; re-checked server-side when it matters
	Exp   time.Time  // UTC expiry of the session token
}

// ErrInvalidSession is returned when a session token cannot be verified or
// has expired.
var ErrInvalidSession = errors.New("invalid session")

// NewSessionToken builds and signs an HS256 JWT for a freshly authenticated
// user. The claims are the subject (sub), the role at login time,
// expiration (exp) and issued-at (iat), mirroring what the verification
// side expects.
func NewSessionToken(secret, login string, role model.Role, ttlMin int) (string, Session, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  login,
		"role": string(role),
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", Session{}, err
	}
	return signed, Session{Login: login, Role: role, Exp: exp}, nil
}

// ParseSessionToken verifies a session token and recovers the Session.
// Tokens signed with any method other than HMAC are rejected, as are
// expired or malformed tokens.
func ParseSessionToken(secret, raw string) (Session, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Session{}, ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidSession
	}
	login, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	role := model.Role(roleStr)
	if login == "" || !role.Valid() {
		return Session{}, ErrInvalidSession
	}
	s := Session{Login: login, Role: role}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.Exp = exp.Time.UTC()
	}
	return s, nil
}
