package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/chair-scheduler/internal/contacts"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/httpresp"
)

const maxContactsUpload = 1 << 20

type ContactsHandler struct{}

func NewContactsHandler() *ContactsHandler {
	return &ContactsHandler{}
}

// Import aceita o CSV como campo multipart "file" ou como corpo cru.
func (h *ContactsHandler) Import(c *gin.Context) {
	var r io.Reader

	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			httperr.BadRequest(c, "invalid_file", "Arquivo inválido.")
			return
		}
		defer f.Close()
		r = f
	} else {
		r = c.Request.Body
	}

	list, err := contacts.Parse(io.LimitReader(r, maxContactsUpload))
	if err != nil {
		httperr.BadRequest(c, "invalid_csv", "CSV inválido.")
		return
	}

	httpresp.List(c, list)
}
