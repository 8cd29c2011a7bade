package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWKS struct {
	Keys []JSONWebKey `json:"keys"`
}

type JSONWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// KeySet caches the signing keys published at a JWKS endpoint.
type KeySet struct {
	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	url       string
	client    *http.Client
	refreshed time.Time
}

func NewKeySet(jwksURL string) *KeySet {
	return &KeySet{
		url:    jwksURL,
		keys:   make(map[string]*rsa.PublicKey),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// KeyFunc resolves the RSA key named by the token's kid header.
func (s *KeySet) KeyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	kid, ok := token.Header["kid"].(string)
	if !ok {
		return nil, fmt.Errorf("kid header not found")
	}
	return s.Key(kid)
}

func (s *KeySet) Key(kid string) (*rsa.PublicKey, error) {
	s.mu.RLock()
	key, exists := s.keys[kid]
	s.mu.RUnlock()
	if exists {
		return key, nil
	}

	if err := s.refresh(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	key, exists = s.keys[kid]
	s.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("key %q not found", kid)
	}
	return key, nil
}

func (s *KeySet) refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// At most one refresh per minute
	if time.Since(s.refreshed) < time.Minute && len(s.keys) > 0 {
		return nil
	}

	resp, err := s.client.Get(s.url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return err
	}

	keys := make(map[string]*rsa.PublicKey, len(jwks.Keys))
	for _, k := range jwks.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := k.PublicKey()
		if err != nil {
			return fmt.Errorf("decode key %q: %w", k.Kid, err)
		}
		keys[k.Kid] = pub
	}
	s.keys = keys
	s.refreshed = time.Now()
	return nil
}

func (k *JSONWebKey) PublicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: e}, nil
}
