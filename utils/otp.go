package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Delivery codes are drawn from 1000-9999 so they always render as four
	// digits without a leading zero; the code is read aloud at handoff.
	deliveryCodeMin  = 1000
	deliveryCodeSpan = 9000

	loginCodeDigits = 6
	loginCodeTTL    = 5 * time.Minute
)

// DeliveryCodeGenerator produces the 4-digit verification code stored on each
// order. The entropy source is injectable so tests can pin the draw; a nil
// Rand falls back to crypto/rand.
type DeliveryCodeGenerator struct {
	Rand io.Reader
}

// Generate returns a uniform 4-digit delivery code in the range 1000-9999.
func (g *DeliveryCodeGenerator) Generate() (string, error) {
	src := g.Rand
	if src == nil {
		src = rand.Reader
	}
	n, err := rand.Int(src, big.NewInt(deliveryCodeSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate delivery code: %w", err)
	}
	return strconv.FormatInt(deliveryCodeMin+n.Int64(), 10), nil
}

// generateLoginCode returns a zero-padded numeric login code.
func generateLoginCode() (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(loginCodeDigits), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate login code: %w", err)
	}
	return fmt.Sprintf("%0*d", loginCodeDigits, n), nil
}

// SendSMSMessage sends an SMS to the given phone number.
// Replace the body of this function with your actual SMS gateway integration.
func SendSMSMessage(phoneNumber, message string) error {
	GetLogger().Sugar().Infof("Sending SMS to %s: %s", phoneNumber, message)
	return nil
}

// InitiateLoginOTP generates a login code, stores its bcrypt hash in Redis
// with a 5-minute TTL, and sends the code via SMS.
func InitiateLoginOTP(phoneNumber string) error {
	code, err := generateLoginCode()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash login code: %w", err)
	}

	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}
	key := "login:" + phoneNumber
	if err := client.Set(ctx, key, string(hash), loginCodeTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache login code", zap.Error(err))
		return fmt.Errorf("failed to initiate login OTP")
	}

	message := fmt.Sprintf("Your CHC Rent login code is: %s. It expires in 5 minutes.", code)
	if err := SendSMSMessage(phoneNumber, message); err != nil {
		GetLogger().Error("Failed to send login code via SMS", zap.Error(err))
		return fmt.Errorf("failed to send login OTP")
	}
	return nil
}

// VerifyLoginOTP compares the provided code against the stored hash and
// deletes the record on success.
func VerifyLoginOTP(phoneNumber, providedCode string) error {
	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}
	key := "login:" + phoneNumber

	storedHash, err := client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("login code not found or expired")
		}
		return fmt.Errorf("failed to retrieve login code: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(providedCode)) != nil {
		return fmt.Errorf("login code does not match")
	}

	if err := client.Del(ctx, key).Err(); err != nil {
		GetLogger().Error("Failed to delete login code after verification", zap.Error(err))
	}
	return nil
}
