package utils

import (
	"fmt"
	"math/rand"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"김", "이", "박", "최", "정", "강", "조", "윤", "장", "임",
	"한", "오", "서", "신", "권", "황", "안", "송", "전", "홍",
}
var commonNameSyllables = []string{
	"민", "준", "서", "지", "현", "우", "하", "윤", "도", "연",
	"예", "은", "수", "재", "영", "성", "진", "태", "주", "건",
	"아", "빈", "호", "경", "유", "정", "찬", "혜", "석", "원",
}

// 로마자 표기는 음절 단위로 붙여서 아이디를 만들 때 쓴다
var syllableRomanizations = map[string]string{
	"김": "kim", "이": "lee", "박": "park", "최": "choi", "정": "jung",
	"강": "kang", "조": "cho", "윤": "yoon", "장": "jang", "임": "lim",
	"한": "han", "오": "oh", "서": "seo", "신": "shin", "권": "kwon",
	"황": "hwang", "안": "ahn", "송": "song", "전": "jeon", "홍": "hong",
	"민": "min", "준": "jun", "지": "ji", "현": "hyun", "우": "woo",
	"하": "ha", "도": "do", "연": "yeon", "예": "ye", "은": "eun",
	"수": "soo", "재": "jae", "영": "young", "성": "sung", "진": "jin",
	"태": "tae", "주": "joo", "건": "gun", "아": "ah", "빈": "bin",
	"호": "ho", "경": "kyung", "유": "yoo", "찬": "chan", "혜": "hye",
	"석": "seok", "원": "won",
}

func GenerateRandomKoreanName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameSyllables[rand.Intn(len(commonNameSyllables))]
	}
	return surname + name
}

var roles = []domain.Role{
	domain.RoleManager,
	domain.RoleTrainer,
	domain.RoleFrontDesk,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var shiftCategories = []domain.ShiftCategory{
	domain.ShiftDay,
	domain.ShiftNight,
}

func GenerateRandomShiftCategory() domain.ShiftCategory {
	return shiftCategories[rand.Intn(len(shiftCategories))]
}

var digits = "0123456789"

func GenerateUsernameFromKoreanName(koreanName string) string {
	username := ""

	for _, syllable := range koreanName {
		romanized, exists := syllableRomanizations[string(syllable)]
		if !exists {
			continue
		}
		length := rand.Intn(len(romanized)) + 1
		username += romanized[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomStaff(password string, emailDomainName string) (*domain.Staff, error) {
	fullName := GenerateRandomKoreanName()
	username := GenerateUsernameFromKoreanName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := &domain.Staff{
		Username:      username,
		PasswordHash:  string(passwordHash),
		FullName:      fullName,
		Email:         username + "@" + emailDomainName,
		Role:          GenerateRandomRole(),
		ShiftCategory: GenerateRandomShiftCategory(),
	}

	return staff, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}
