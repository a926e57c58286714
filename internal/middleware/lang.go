package middleware

import (
	"strings"

	"github.com/haierkeys/fast-note-keep/pkg/app"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// LangWithTranslator 创建带翻译器的语言中间件（支持依赖注入）
// The language comes from the lang query parameter or header and is stored
// per request; the process default language is never changed here.
func LangWithTranslator(uni *ut.UniversalTranslator) gin.HandlerFunc {

	return func(c *gin.Context) {

		var lang string

		if s, exist := c.GetQuery("lang"); exist {
			lang = s
		} else if s = c.GetHeader("lang"); len(s) != 0 {
			lang = s
		}

		lang = strings.ToLower(strings.ReplaceAll(lang, "-", "_"))

		trans, found := uni.GetTranslator(lang)
		if !found && strings.HasPrefix(lang, "zh") {
			trans, found = uni.GetTranslator("zh")
		}
		if !found {
			trans, _ = uni.GetTranslator("en")
		}
		c.Set(app.TransKey, trans)
		if lang != "" {
			c.Set(app.LangKey, lang)
		}

		c.Next()
	}
}
