package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	KeyHeaderMenu         = "theme.menu.header"
	KeyFooterMenu         = "theme.menu.footer"
	KeyBuilderName        = "theme.builder.name"
	KeyBuilderProName     = "theme.builder.pro_name"
	KeyBuilderDescription = "theme.builder.description"
	KeyImportedTitle      = "theme.get_started.imported_title"
	KeyImportedSubtitle   = "theme.get_started.imported_subtitle"
	KeyViewSite           = "theme.get_started.view_site"
	KeyReadMore           = "theme.loop.read_more"
	KeyNoPosts            = "theme.loop.no_posts"
	KeySearchResults      = "theme.search.results_for"
	KeySearchPlaceholder  = "theme.search.placeholder"
	KeySearchSubmit       = "theme.search.submit"
	KeyNotFoundTitle      = "theme.not_found.title"
	KeyNotFoundBody       = "theme.not_found.body"
	KeyGetStartedTitle    = "theme.get_started.title"
	KeyGetStartedStartAI  = "theme.get_started.start_ai"
	KeyGetStartedImport   = "theme.get_started.import_design"
	KeyBlogTitle          = "theme.blog.title"
	KeyFrontLatestPosts   = "theme.front.latest_posts"
	KeyAjaxNonceInvalid   = "theme.ajax.nonce_invalid"
	KeyAjaxUnknownAction  = "theme.ajax.unknown_action"
	KeyStoreUnavailable   = "theme.flags.unavailable"
)

type entry struct {
	key string
	en  string
	pt  string
}

var catalog = []entry{
	{KeyHeaderMenu, "Header Menu", "Menu do cabeçalho"},
	{KeyFooterMenu, "Footer Menu", "Menu do rodapé"},
	{KeyBuilderName, "Kubio", "Kubio"},
	{KeyBuilderProName, "Kubio PRO", "Kubio PRO"},
	{KeyBuilderDescription, "Kubio is an innovative block-based WordPress website builder that enriches the block editor with new blocks and gives its users endless styling options.", "Kubio é um construtor de sites WordPress baseado em blocos que enriquece o editor com novos blocos e opções de estilo ilimitadas."},
	{KeyImportedTitle, "%s design has been successfully imported!", "O design %s foi importado com sucesso!"},
	{KeyImportedSubtitle, "%s design has been successfully imported! You can take a look at your new design or start editing it", "O design %s foi importado com sucesso! Você pode conferir seu novo design ou começar a editá-lo"},
	{KeyViewSite, "View site", "Ver site"},
	{KeyReadMore, "Read more", "Leia mais"},
	{KeyNoPosts, "No posts found", "Nenhum post encontrado"},
	{KeySearchResults, "Search results for: %s", "Resultados da busca por: %s"},
	{KeySearchPlaceholder, "Search …", "Buscar …"},
	{KeySearchSubmit, "Search", "Buscar"},
	{KeyNotFoundTitle, "Page not found", "Página não encontrada"},
	{KeyNotFoundBody, "The page you were looking for does not exist. Try searching instead.", "A página que você procura não existe. Tente buscar."},
	{KeyGetStartedTitle, "Get started with %s", "Comece com %s"},
	{KeyGetStartedStartAI, "Start with AI", "Começar com IA"},
	{KeyGetStartedImport, "Import the %s design", "Importar o design %s"},
	{KeyBlogTitle, "Blog", "Blog"},
	{KeyFrontLatestPosts, "Latest posts", "Posts recentes"},
	{KeyAjaxNonceInvalid, "The link you followed has expired.", "O link que você seguiu expirou."},
	{KeyAjaxUnknownAction, "Unknown action.", "Ação desconhecida."},
	{KeyStoreUnavailable, "Settings are temporarily unavailable.", "As configurações estão temporariamente indisponíveis."},
}

func init() {
	for _, e := range catalog {
		_ = message.SetString(language.English, e.key, e.en)
		_ = message.SetString(language.BrazilianPortuguese, e.key, e.pt)
	}
}
