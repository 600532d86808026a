package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// OperatorClaims 定义了 Token 中需要包含的业务信息
type OperatorClaims struct {
	OperatorID uint64   `json:"operator_id"`
	Roles      []string `json:"roles"`
	jwt.RegisteredClaims
}
