package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachly/mobile/core"
	"github.com/coachly/mobile/core/session"
)

func fieldMap(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.FieldMap()
}

func validRegisterForm() RegisterForm {
	return RegisterForm{
		Name:        "Ann Lee",
		Phone:       "0123456789",
		Email:       "ann@x.com",
		Password:    "abcdef",
		DateOfBirth: "01-01-2000",
	}
}

func TestLoginFormValidate(t *testing.T) {
	tests := []struct {
		name       string
		form       LoginForm
		wantFields []string
	}{
		{name: "valid", form: LoginForm{Email: "a@b.com", Password: "pwd"}},
		{name: "email cleaned", form: LoginForm{Email: "  A@B.com ", Password: "pwd"}},
		{name: "all empty", form: LoginForm{}, wantFields: []string{"email", "p_words"}},
		{name: "bad email", form: LoginForm{Email: "not-an-email", Password: "pwd"}, wantFields: []string{"email"}},
		{name: "email missing dot", form: LoginForm{Email: "a@b", Password: "pwd"}, wantFields: []string{"email"}},
		{name: "password missing", form: LoginForm{Email: "a@b.com"}, wantFields: []string{"p_words"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			flds := fieldMap(t, err)
			assert.Len(t, flds, len(tt.wantFields))
			for _, fld := range tt.wantFields {
				assert.Contains(t, flds, fld)
			}
		})
	}
}

func TestRegisterFormValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*RegisterForm)
		wantFields []string
	}{
		{name: "valid", mutate: func(f *RegisterForm) {}},
		{name: "name missing", mutate: func(f *RegisterForm) { f.Name = "" }, wantFields: []string{"name"}},
		{name: "name whitespace only", mutate: func(f *RegisterForm) { f.Name = "   " }, wantFields: []string{"name"}},
		{name: "phone missing", mutate: func(f *RegisterForm) { f.Phone = "" }, wantFields: []string{"phone_no"}},
		{name: "phone too short", mutate: func(f *RegisterForm) { f.Phone = "12345" }, wantFields: []string{"phone_no"}},
		{name: "phone with letters", mutate: func(f *RegisterForm) { f.Phone = "01234abcde" }, wantFields: []string{"phone_no"}},
		{name: "bad email", mutate: func(f *RegisterForm) { f.Email = "ann.x.com" }, wantFields: []string{"email"}},
		{name: "short password", mutate: func(f *RegisterForm) { f.Password = "abc" }, wantFields: []string{"p_words"}},
		{name: "dob missing", mutate: func(f *RegisterForm) { f.DateOfBirth = "" }, wantFields: []string{"dob"}},
		{name: "dob not a real date", mutate: func(f *RegisterForm) { f.DateOfBirth = "31-02-2000" }, wantFields: []string{"dob"}},
		{name: "dob month overflow", mutate: func(f *RegisterForm) { f.DateOfBirth = "01-13-2000" }, wantFields: []string{"dob"}},
		{name: "dob wrong order", mutate: func(f *RegisterForm) { f.DateOfBirth = "2000-01-01" }, wantFields: []string{"dob"}},
		{name: "dob not padded", mutate: func(f *RegisterForm) { f.DateOfBirth = "1-1-2000" }, wantFields: []string{"dob"}},
		{
			name:       "multiple fields",
			mutate:     func(f *RegisterForm) { f.Name = ""; f.Phone = "123"; f.Password = "ab" },
			wantFields: []string{"name", "phone_no", "p_words"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegisterForm()
			tt.mutate(&form)
			err := form.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			flds := fieldMap(t, err)
			assert.Len(t, flds, len(tt.wantFields))
			for _, fld := range tt.wantFields {
				assert.Contains(t, flds, fld)
			}
		})
	}
}

func TestRegisterFormRoleDefault(t *testing.T) {
	form := validRegisterForm()
	require.NoError(t, form.Validate())
	assert.Equal(t, string(session.RoleStudent), form.Role)

	form = validRegisterForm()
	form.Role = string(session.RoleTutor)
	require.NoError(t, form.Validate())
	assert.Equal(t, string(session.RoleTutor), form.Role)
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"01-01-2000", true},
		{"29-02-2020", true},  // leap day
		{"29-02-2019", false}, // not a leap year
		{"31-04-2000", false}, // April has 30 days
		{"00-01-2000", false},
		{"31-12-1999", true},
		{"31122000", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDate(tt.in))
		})
	}
}
