package secure

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 10000
	keyLen     = 32
)

// Encrypt 对明文口令做加盐散列，返回 (hash, salt)，盐每次随机
func Encrypt(plain string) (hash, salt string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	salt = hex.EncodeToString(raw)
	return hashWith(plain, salt), salt, nil
}

// Verify 用已存盐重算散列并常量时间比较
func Verify(plain, salt, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(hashWith(plain, salt)), []byte(hash)) == 1
}

func hashWith(plain, salt string) string {
	key := pbkdf2.Key([]byte(plain), []byte(salt), iterations, keyLen, sha256.New)
	return hex.EncodeToString(key)
}
