package matriculaweb

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Matheusmno/MWebCrawler/internal/catalog"
)

const DefaultBaseUrl = "https://matriculaweb.unb.br"

// Page is the name of an .aspx page under a level.
type Page string

const (
	PageCurriculum       Page = "curriculo"
	PageFlow             Page = "fluxo"
	PageCourseData       Page = "curso_dados"
	PageCourseList       Page = "curso_rel"
	PageDiscipline       Page = "disciplina"
	PageDisciplinePopup  Page = "disciplina_pop"
	PageOfferDepartments Page = "oferta_dep"
	PageOfferDisciplines Page = "oferta_dis"
	PageWaitlist         Page = "faltavaga_rel"
	PageOfferingDetails  Page = "oferta_dados"
)

// Endpoint identifies one page of the system, e.g. graduacao/curriculo.
type Endpoint struct {
	Level catalog.Level
	Page  Page
}

func (e Endpoint) Path() string {
	return fmt.Sprintf("/%s/%s.aspx", e.Level, e.Page)
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s/%s", e.Level, e.Page)
}

// URL resolves the endpoint against a base url, query parameters are
// encoded in key order.
func (e Endpoint) URL(baseUrl string, params url.Values) string {
	u := strings.TrimSuffix(baseUrl, "/") + e.Path()
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}
