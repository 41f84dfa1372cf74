package utils

import "golang.org/x/crypto/bcrypt"

// 仅在 store.hash_passwords 开启时使用；默认仍走明文等值比较（兼容旧持久化数据）
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
