package push

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name          string
		resp          Response
		wantSucceeded bool
		wantInvalid   []string
	}{
		{
			name: "全部成功",
			resp: Response{
				StatusCode: http.StatusOK,
				Results: []TargetResult{
					{RegistrationID: "a", MessageID: "0:1"},
				},
			},
			wantSucceeded: true,
		},
		{
			name: "部分注册ID失效",
			resp: Response{
				StatusCode: http.StatusOK,
				Results: []TargetResult{
					{RegistrationID: "a", MessageID: "0:1"},
					{RegistrationID: "b", Error: "NotRegistered"},
					{RegistrationID: "c", Error: "InvalidRegistration"},
					{RegistrationID: "d", Error: "Unavailable"},
				},
			},
			wantSucceeded: true,
			wantInvalid:   []string{"b", "c"},
		},
		{
			name:          "鉴权失败",
			resp:          Response{StatusCode: http.StatusUnauthorized},
			wantSucceeded: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantSucceeded, tc.resp.Succeeded())
			assert.Equal(t, tc.wantInvalid, tc.resp.InvalidTargets())
		})
	}
}
