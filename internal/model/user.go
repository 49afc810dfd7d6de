// Package model은 도메인 모델을 정의한다.
package model

import "time"

// User는 서비스 이용 사용자를 나타낸다.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity는 외부 IdP와의 연결 정보를 나타낸다.
// 향후 복수 IdP(Google, GitHub 등)에 대응할 수 있는 구조.
type Identity struct {
	ID             string
	UserID         string
	Provider       string
	ProviderUserID string
	CreatedAt      time.Time
}

// Session은 사용자의 로그인 세션을 나타낸다.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
