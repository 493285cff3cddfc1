package randomstringgenerator

import (
	"crypto/rand"
	"fmt"
	"forumaccount/internal/core/domain/user"
	"math/big"
	"time"
)

var chars = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-")

// Generator produces tokens in the form <random chars>_<unix timestamp>, so a
// consumer can tell how old a token is without storing its creation time.
type Generator struct {
	length int
	now    func() time.Time
}

func NewGenerator(length int, now func() time.Time) *Generator {
	if length <= 0 {
		panic("token length must be positive")
	}
	if now == nil {
		panic("now must not be nil")
	}
	return &Generator{length: length, now: now}
}

func (g *Generator) GenerateToken() user.Token {
	return user.Token(fmt.Sprintf("%s_%d", g.randomString(), g.now().Unix()))
}

func (g *Generator) randomString() string {
	max := big.NewInt(int64(len(chars)))
	b := make([]rune, g.length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(fmt.Sprintf("could not read random bytes: %v", err))
		}
		b[i] = chars[n.Int64()]
	}
	return string(b)
}
