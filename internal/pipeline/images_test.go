package pipeline

import "testing"

func TestFirstImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{name: "first of several", html: `<p>x</p><img src="/a.png"><img src="/b.png">`, want: "/a.png"},
		{name: "nested in figure", html: `<figure><img alt="x" src="cat.jpg"></figure>`, want: "cat.jpg"},
		{name: "skips img without src", html: `<img alt="x"><img src="b.png">`, want: "b.png"},
		{name: "none", html: `<p>text</p>`, want: ""},
		{name: "empty", html: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FirstImage(tt.html); got != tt.want {
				t.Errorf("FirstImage() = %q, want %q", got, tt.want)
			}
		})
	}
}
