package token

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	Configure("round-trip-secret", time.Hour)

	tok, err := GenerateToken("user-123", "admin")
	if err != nil {
		t.Fatalf("GenerateToken失败: %v", err)
	}

	identity, err := ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken失败: %v", err)
	}
	if identity.UserID != "user-123" {
		t.Errorf("UserID = %s, 期望 user-123", identity.UserID)
	}
	if identity.Role != "admin" {
		t.Errorf("Role = %s, 期望 admin", identity.Role)
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	Configure("tamper-secret", time.Hour)

	tok, err := GenerateToken("user-123", "user")
	if err != nil {
		t.Fatalf("GenerateToken失败: %v", err)
	}

	// 破坏签名部分
	parts := strings.Split(tok, ".")
	tampered := parts[0] + "." + parts[1] + "." + "AAAA"
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("被篡改的令牌应校验失败")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	Configure("secret-a", time.Hour)
	tok, err := GenerateToken("user-123", "user")
	if err != nil {
		t.Fatalf("GenerateToken失败: %v", err)
	}

	Configure("secret-b", time.Hour)
	if _, err := ValidateToken(tok); err == nil {
		t.Error("换密钥后旧令牌应校验失败")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	Configure("expiry-secret", -time.Minute)
	tok, err := GenerateToken("user-123", "user")
	if err != nil {
		t.Fatalf("GenerateToken失败: %v", err)
	}
	if _, err := ValidateToken(tok); err == nil {
		t.Error("过期令牌应校验失败")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	Configure("garbage-secret", time.Hour)
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("非法字符串应校验失败")
	}
}
