package domain

import "regexp"

// mobileRegexp контактный номер группы: ровно 10 цифр, без разделителей
var mobileRegexp = regexp.MustCompile(`^\d{10}$`)

// IsValidMobile проверяет формат контактного номера
func IsValidMobile(mobile string) bool {
	return mobileRegexp.MatchString(mobile)
}

// IsValidMemberAge проверяет возраст участника
func IsValidMemberAge(age int) bool {
	return age >= MinMemberAge && age <= MaxMemberAge
}
