package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httpresp"
	ucMatch "github.com/BruksfildServices01/timeslot-matcher/internal/usecase/match"
)

type MatchHandler struct {
	list *ucMatch.ListMatches
}

func NewMatchHandler(list *ucMatch.ListMatches) *MatchHandler {
	return &MatchHandler{list: list}
}

func (h *MatchHandler) List(c *gin.Context) {
	s, ok := currentUser(c)
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), s.UserID)
	if err != nil {
		httperr.FromError(c, err, "match_list_failed")
		return
	}

	httpresp.List(c, out)
}
