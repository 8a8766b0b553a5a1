package utils

import (
	"math/rand"
	"time"

	"github.com/fitstudio/backend/models"
	"gorm.io/gorm"
)

const inviteCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueInviteCode produces a studio invite code that does not
// collide with any existing coach's code.
func GenerateUniqueInviteCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, inviteCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var coach models.Coach
		err := tx.Where("invite_code = ?", code).First(&coach).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
