package contentapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		q    Query
		want string
	}{
		{"empty", Query{}, ""},
		{"nil map", nil, ""},
		{"scalars", Query{"pagination[page]": 2, "publicationState": "live", "x": true}, "pagination%5Bpage%5D=2&publicationState=live&x=true"},
		{"repeated strings", Query{"populate": []string{"images", "category"}}, "populate=images&populate=category"},
		{"repeated ints", Query{"ids": []int{3, 1}}, "ids=3&ids=1"},
		{"nil skipped", Query{"a": nil, "b": "1"}, "b=1"},
		{"sorted keys", Query{"z": "1", "a": "2", "m": "3"}, "a=2&m=3&z=1"},
		{"other types", Query{"f": 1.5}, "f=1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.q.Encode())
		})
	}
}
