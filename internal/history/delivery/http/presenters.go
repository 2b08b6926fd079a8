package http

import (
	"time"

	"spyglass-srv/internal/history"
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/paginator"
)

type listReq struct {
	paginator.PaginateQuery
}

func (r listReq) toInput() history.ListInput {
	return history.ListInput{Paginate: r.PaginateQuery}
}

type getReq struct {
	ID string
}

type historyItemResp struct {
	ID          string   `json:"id"`
	Competitors []string `json:"competitors"`
	Report      string   `json:"report"`
	Date        string   `json:"date"`
}

type listResp struct {
	Items []historyItemResp           `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func (h *handler) newHistoryItemResp(it model.HistoryItem) historyItemResp {
	return historyItemResp{
		ID:          it.ID,
		Competitors: it.Competitors,
		Report:      it.Report,
		Date:        it.Date.UTC().Format(time.RFC3339Nano),
	}
}

func (h *handler) newListResp(o history.ListOutput) listResp {
	items := make([]historyItemResp, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, h.newHistoryItemResp(it))
	}
	return listResp{
		Items: items,
		Meta:  o.Paginator.ToResponse(),
	}
}
