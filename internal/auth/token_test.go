package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTIssuer", func() {
	var issuer *JWTIssuer

	BeforeEach(func() {
		issuer = NewJWTIssuer([]byte("test-secret"), time.Hour)
	})

	It("round-trips the user id", func() {
		token, err := issuer.Generate(42)
		Expect(err).NotTo(HaveOccurred())

		userID, err := issuer.Verify(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(userID).To(Equal(int64(42)))
	})

	It("rejects tokens signed with another secret", func() {
		other := NewJWTIssuer([]byte("other-secret"), time.Hour)
		token, err := other.Generate(42)
		Expect(err).NotTo(HaveOccurred())

		_, err = issuer.Verify(token)
		Expect(err).To(MatchError(ErrInvalidToken))
	})

	It("reports expiry separately", func() {
		token, err := issuer.Generate(42)
		Expect(err).NotTo(HaveOccurred())

		issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err = issuer.Verify(token)
		Expect(err).To(MatchError(ErrExpiredToken))
	})

	It("requires a sub claim", func() {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		Expect(err).NotTo(HaveOccurred())

		_, err = issuer.Verify(signed)
		Expect(err).To(MatchError(ErrMissingClaim))
	})

	It("rejects a non-numeric sub", func() {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "alice",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		Expect(err).NotTo(HaveOccurred())

		_, err = issuer.Verify(signed)
		Expect(err).To(MatchError(ErrInvalidToken))
	})

	It("rejects garbage", func() {
		_, err := issuer.Verify("not-a-token")
		Expect(err).To(MatchError(ErrInvalidToken))
	})
})

var _ = Describe("passwords", func() {
	It("matches the original password only", func() {
		hash, err := HashPassword("secret123")
		Expect(err).NotTo(HaveOccurred())
		Expect(hash).NotTo(Equal("secret123"))

		Expect(CheckPassword(hash, "secret123")).To(BeTrue())
		Expect(CheckPassword(hash, "wrong")).To(BeFalse())
	})

	It("never matches a malformed hash", func() {
		Expect(CheckPassword("not-bcrypt", "secret123")).To(BeFalse())
	})
})
