package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"autoshop/internal/domain"
)

const (
	dateLayout   = "2006-01-02"
	expiryLayout = "01/06"
	adultDays    = 18 * 365
)

var (
	validate = validator.New()
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// digits 恰好 n 位数字
func digits(s string, n int) bool {
	return validate.Var(s, fmt.Sprintf("len=%d,number", n)) == nil
}

func validEmail(s string) bool { return emailRe.MatchString(s) }

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

// adult 按天数近似：满 18*365 天
func adult(dob, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(today.Sub(dob).Hours()/24) >= adultDays
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// profile 注册和后台编辑共用的字段校验
type profile struct {
	Username    string
	Password    string
	DateOfBirth string
	Gender      string
	Phone       string
	Email       string

	selfID           uint // 编辑时排除自己
	passwordOptional bool
	requireAdult     bool
}

func (p *profile) normalize() {
	p.Username = strings.TrimSpace(p.Username)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	p.Gender = strings.TrimSpace(p.Gender)
}

// check 按固定顺序校验，遇到第一条失败就返回
func (p *profile) check(ctx context.Context, users domain.UserRepository, now time.Time) (time.Time, error) {
	p.normalize()
	if utf8.RuneCountInString(p.Username) < 3 {
		return time.Time{}, Validation("Username must be at least 3 characters long")
	}
	if !(p.passwordOptional && p.Password == "") && utf8.RuneCountInString(p.Password) < 6 {
		return time.Time{}, Validation("Password must be at least 6 characters long")
	}
	existing, err := users.FindByUsername(ctx, p.Username)
	if err != nil {
		return time.Time{}, Internal("Could not check username", err)
	}
	if existing != nil && existing.ID != p.selfID {
		return time.Time{}, Validation("Username is already taken")
	}
	if p.Email != "" {
		existing, err = users.FindByEmail(ctx, p.Email)
		if err != nil {
			return time.Time{}, Internal("Could not check email", err)
		}
		if existing != nil && existing.ID != p.selfID {
			return time.Time{}, Validation("Email is already registered")
		}
	}
	dob, err := parseDate(p.DateOfBirth)
	if err != nil {
		return time.Time{}, Validation("Invalid date of birth, expected YYYY-MM-DD")
	}
	if p.requireAdult && !adult(dob, now) {
		return time.Time{}, Validation("You must be at least 18 years old to register")
	}
	if !domain.Gender(p.Gender).Valid() {
		return time.Time{}, Validation("Gender must be male, female or other")
	}
	if p.Phone != "" && !digits(p.Phone, 10) {
		return time.Time{}, Validation("Phone number must contain exactly 10 digits")
	}
	if p.Email != "" && !validEmail(p.Email) {
		return time.Time{}, Validation("Invalid email address")
	}
	return dob, nil
}
