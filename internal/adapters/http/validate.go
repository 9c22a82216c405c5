package http

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Input validation is the transport's job; the reading service assumes a
// pre-validated (name, dob) pair.

const (
	minNameLen = 2
	maxNameLen = 50
	minAge     = 13
	maxAge     = 100
)

var (
	namePattern = regexp.MustCompile(`^[a-zA-ZÀ-ỹ\s]+$`)
	dobPattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// User-facing Vietnamese validation messages.
var (
	errMissingFields = errors.New("Vui lòng nhập đầy đủ Tên và Ngày sinh.")
	errNameCharset   = errors.New("Tên chỉ được chứa chữ cái và khoảng trắng.")
	errDOBFormat     = errors.New("Ngày sinh phải có định dạng YYYY-MM-DD.")
	errDOBFuture     = errors.New("Ngày sinh không thể là một ngày trong tương lai.")
)

// validateRequest checks name and dob and returns a user-facing message on
// the first violation found.
func validateRequest(req TarotRequest, now time.Time) error {
	name := strings.TrimSpace(req.Name)

	if name == "" || req.DOB == "" {
		return errMissingFields
	}
	if len([]rune(name)) < minNameLen {
		return fmt.Errorf("Tên phải là một chuỗi có ít nhất %d ký tự.", minNameLen)
	}
	if len([]rune(req.Name)) > maxNameLen {
		return fmt.Errorf("Tên không được vượt quá %d ký tự.", maxNameLen)
	}
	if !namePattern.MatchString(name) {
		return errNameCharset
	}

	if !dobPattern.MatchString(req.DOB) {
		return errDOBFormat
	}
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return errDOBFormat
	}
	if dob.After(now) {
		return errDOBFuture
	}

	if a := age(dob, now); a < minAge || a > maxAge {
		return fmt.Errorf("Tuổi phải trong khoảng từ %d đến %d.", minAge, maxAge)
	}

	return nil
}

func age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	// Birthday not reached yet this year.
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}
