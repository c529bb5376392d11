package http

import (
	"errors"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/rgdevment/opinion-brief/internal/domain"
	"github.com/rgdevment/opinion-brief/internal/platform/catalog"
	"github.com/rgdevment/opinion-brief/internal/service"
)

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head><meta charset="utf-8"><title>舆情快报自动生成系统</title></head>
<body>
<h1>舆情快报自动生成系统</h1>
<form method="post" action="/v1/reports/preview">
<h2>一、基本情况</h2>
<label>事件日期 <input type="date" name="date" value="{{.Today}}"></label>
<label>具体时间 <input name="time" placeholder="09:08:22"></label><br>
<label>平台名称 <input name="platform" value="{{.Catalog.DefaultPlatform}}"></label><br>
<label>发布者昵称 <input name="author"></label>
<label>发布者ID（可选） <input name="author_id"></label><br>
<label>涉事地域 <select name="region">{{range .Catalog.Regions}}<option>{{.}}</option>{{end}}</select></label>
<label>进一步精确的地域名称（选择“{{.RegionOther}}”时填写） <input name="other_region"></label><br>
<label>主要内容<br><textarea name="content" rows="4" cols="60"></textarea></label>
<h2>二、传播情况</h2>
<label>数量 <input type="number" name="count" min="1" value="1"></label>
<label>累计点赞次数 <input name="likes"></label>
<label>累计评论条数 <input name="comments"></label><br>
<label>传播补充说明<br><textarea name="spread_extra" rows="2" cols="60"></textarea></label>
<h2>三、工作措施</h2>
<label>交办对象 <input name="assigned_to"></label>
<label><input type="checkbox" name="has_order"> 下发网络舆情交办单</label><br>
<label><input type="checkbox" name="deleted"> 已删除</label>
<label>类型 <select name="delete_type">{{range .Catalog.DeleteTypes}}<option>{{.}}</option>{{end}}</select></label>
<label>删除时间 <input name="delete_time" placeholder="09:22"></label><br>
<label>指导意见模板 <select name="guidance_template">{{range .Catalog.GuidanceTemplates}}<option>{{.Key}}</option>{{end}}</select></label><br>
<label>自定义指导意见<br><textarea name="guidance_text" rows="2" cols="60"></textarea></label>
<h2>四、链接信息</h2>
<label>链接（多条用逗号分隔）<br><textarea name="links" rows="2" cols="60"></textarea></label><br>
{{if .APIKeyField}}<label>访问密钥 <input type="password" name="api_key" autocomplete="off"></label><br>{{end}}
<button type="submit">生成舆情快报</button>
<button type="submit" formaction="/v1/reports/txt">下载 TXT</button>
<button type="submit" formaction="/v1/reports/docx">下载 DOCX</button>
</form>
</body>
</html>
`))

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head><meta charset="utf-8"><title>舆情快报</title></head>
<body>
{{if .Error}}<p style="color:#b00">{{.Error}}</p>{{else}}<p>已生成舆情快报</p>
<pre style="white-space:pre-wrap">{{.Text}}</pre>{{end}}
<p><a href="javascript:history.back()">返回修改</a></p>
</body>
</html>
`))

type formPage struct {
	Today       string
	RegionOther string
	APIKeyField bool
	Catalog     *catalog.Catalog
}

type previewPage struct {
	Text  string
	Error string
}

func (h *Handler) FormPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := formTemplate.Execute(w, formPage{
		Today:       h.today().Format(dateLayout),
		RegionOther: domain.RegionOther,
		APIKeyField: h.apiKeyField,
		Catalog:     h.catalog,
	})
	if err != nil {
		h.logger.Error("form render failed", zap.Error(err))
	}
}

// PreviewReport is the form's default action: the brief, or the reason it
// was rejected, as a readable page.
func (h *Handler) PreviewReport(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		h.renderPreview(w, http.StatusBadRequest, previewPage{Error: err.Error()})
		return
	}

	in, err := req.ToInput(h.catalog, h.today())
	if err != nil {
		h.renderPreview(w, http.StatusBadRequest, previewPage{Error: err.Error()})
		return
	}

	report, err := h.service.Generate(r.Context(), in)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			h.logger.Info("report rejected", zap.String("reason", vErr.Err.Error()))
			h.renderPreview(w, http.StatusUnprocessableEntity, previewPage{Error: vErr.Message})
			return
		}
		h.writeServiceError(w, err)
		return
	}

	h.logger.Info("report previewed", zap.String("report_id", report.ID.String()))

	w.Header().Set("X-Report-ID", report.ID.String())
	h.renderPreview(w, http.StatusOK, previewPage{Text: report.Text})
}

func (h *Handler) renderPreview(w http.ResponseWriter, status int, page previewPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := previewTemplate.Execute(w, page); err != nil {
		h.logger.Error("preview render failed", zap.Error(err))
	}
}
