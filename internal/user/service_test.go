package user

import "testing"

func TestIsStrongPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Aa1!aaaa", true},
		{"Str0ng#Password", true},
		// 不足8位
		{"short1!", false},
		// 分别缺少大写、小写、数字、符号
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSymbols123", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isStrongPassword(tc.password); got != tc.want {
			t.Errorf("isStrongPassword(%q) = %v, 期望 %v", tc.password, got, tc.want)
		}
	}
}
