package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if AdminAjax != "/admin-ajax" {
		t.Fatalf("AdminAjax = %q", AdminAjax)
	}
	if AdminActivated != "/admin/plugins/activated" {
		t.Fatalf("AdminActivated = %q", AdminActivated)
	}
}

func TestContentRouteBuilders(t *testing.T) {
	t.Parallel()

	if got := Post("hello-world"); got != "/post/hello-world" {
		t.Fatalf("Post() = %q", got)
	}
	if got := Page("about us"); got != "/page/about%20us" {
		t.Fatalf("Page() = %q", got)
	}
	if got := SearchFor(""); got != "/search" {
		t.Fatalf("SearchFor(\"\") = %q", got)
	}
	if got := SearchFor("a&b"); got != "/search?s=a%26b" {
		t.Fatalf("SearchFor() = %q", got)
	}
}
