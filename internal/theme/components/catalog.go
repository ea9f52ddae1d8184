// Package components holds the renderers of the theme component catalog and
// the contributors that register them.
package components

import (
	"github.com/louisbranch/pathway/internal/theme/component"
)

// Framework returns the contributor of the base component set. The theme
// overrides most of it.
func Framework() component.Contributor {
	return component.Contributor{
		Name:     "framework",
		Priority: component.PriorityFramework,
		Entries: func() component.Batch {
			return component.Batch{
				{Key: "header", Renderer: Header()},
				{Key: "logo", Renderer: Logo()},
				{Key: "header-menu", Renderer: HeaderMenu()},
				{Key: "footer-menu", Renderer: FooterMenu()},
				{Key: "front-footer", Renderer: FrontFooter()},
				{Key: "css", Renderer: CSS()},
				{Key: "main", Renderer: Main()},
				{Key: "single", Renderer: Single()},
				{Key: "content", Renderer: Content()},
				{Key: "front-page-content", Renderer: FrontPageContent()},
				{Key: "search", Renderer: Search()},
				{Key: "page-not-found", Renderer: PageNotFound()},
				{Key: "post-loop", Renderer: PostLoop()},
				{Key: "archive-loop", Renderer: ArchiveLoop()},
				{Key: "main-loop", Renderer: ArchiveLoop()},
			}
		},
	}
}

// ThemeKeys lists the component keys the theme relies on, in order. All but
// front-page-content and search are registered by the theme contributor.
var ThemeKeys = []string{
	"header",
	"logo",
	"header-menu",
	"inner-nav-bar",
	"inner-hero",
	"inner-title",
	"inner-top-bar",
	"front-hero",
	"front-title",
	"front-subtitle",
	"buttons",
	"front-nav-bar",
	"top-bar-list-icons",
	"top-bar-social-icons",
	"front-top-bar",
	"front-image",
	"front-footer",
	"css",
	"main",
	"single",
	"content",
	"front-page-content",
	"search",
	"page-not-found",
	"main-loop",
	"post-loop",
	"archive-loop",
}

// Theme returns the contributor of the theme's own components. front-page-content
// and search keep the framework renderers.
func Theme() component.Contributor {
	return component.Contributor{
		Name:     "theme",
		Priority: component.PriorityTheme,
		Entries: func() component.Batch {
			archive := ArchiveLoop()
			return component.Batch{
				{Key: "header", Renderer: Header()},
				{Key: "logo", Renderer: Logo()},
				{Key: "header-menu", Renderer: HeaderMenu()},
				{Key: "inner-nav-bar", Renderer: NavBar("inner")},
				{Key: "inner-hero", Renderer: InnerHero()},
				{Key: "inner-title", Renderer: InnerTitle()},
				{Key: "inner-top-bar", Renderer: TopBar("inner")},
				{Key: "front-hero", Renderer: FrontHero()},
				{Key: "front-title", Renderer: FrontTitle()},
				{Key: "front-subtitle", Renderer: FrontSubtitle()},
				{Key: "buttons", Renderer: Buttons()},
				{Key: "front-nav-bar", Renderer: NavBar("front")},
				{Key: "top-bar-list-icons", Renderer: TopBarListIcons()},
				{Key: "top-bar-social-icons", Renderer: TopBarSocialIcons()},
				{Key: "front-top-bar", Renderer: TopBar("front")},
				{Key: "front-image", Renderer: FrontImage()},
				{Key: "front-footer", Renderer: FrontFooter()},
				{Key: "css", Renderer: CSS()},
				{Key: "main", Renderer: Main()},
				{Key: "single", Renderer: Single()},
				{Key: "content", Renderer: Content()},
				{Key: "page-not-found", Renderer: PageNotFound()},
				{Key: "main-loop", Renderer: archive},
				{Key: "post-loop", Renderer: PostLoop()},
				{Key: "archive-loop", Renderer: archive},
			}
		},
	}
}

// Build assembles the registry from the framework and theme contributors
// plus any extra contributors.
func Build(extra ...component.Contributor) (*component.Registry, error) {
	return component.NewBuilder().Add(Framework(), Theme()).Add(extra...).Build()
}
