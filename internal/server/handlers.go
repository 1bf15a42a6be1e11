package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/arloliu/eeagrid/column"
	"github.com/arloliu/eeagrid/errs"
	"github.com/arloliu/eeagrid/format"
	"github.com/arloliu/eeagrid/grid"
	"github.com/gin-gonic/gin"
)

// Error codes returned in the "error" field of error responses.
const (
	codeInvalidArgument = "invalid_argument"
	codeNotFound        = "not_found"
	codeInternal        = "internal_error"
)

type batchRequest struct {
	Columns [][]int64 `json:"columns" binding:"required"`
}

type batchResponse struct {
	Values []int64   `json:"values"`
	Errors []*string `json:"errors"`
}

type callResponse struct {
	Function string `json:"function"`
	Result   int64  `json:"result"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "eeagrid",
		"functions": s.catalog.Len(),
	})
}

func (s *Server) listFunctions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"functions": s.catalog.All()})
}

func (s *Server) getFunction(c *gin.Context) {
	fn, ok := s.catalog.Lookup(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   codeNotFound,
			"message": "unknown function: " + c.Param("name"),
		})
		return
	}

	c.JSON(http.StatusOK, fn)
}

// call handles GET /v1/call/:name?arg=..&arg=..
func (s *Server) call(c *gin.Context) {
	raw := c.QueryArray("arg")
	args := make([]int64, len(raw))
	for i, a := range raw {
		v, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   codeInvalidArgument,
				"message": "arg " + strconv.Itoa(i) + " is not a BIGINT: " + a,
			})
			return
		}
		args[i] = v
	}

	v, err := s.catalog.Call(c.Param("name"), args...)
	if err != nil {
		writeError(c, err)
		return
	}

	fn, _ := s.catalog.Lookup(c.Param("name"))
	c.JSON(http.StatusOK, callResponse{Function: fn.Name, Result: v})
}

// batch handles POST /v1/batch/:name with a JSON body of argument columns.
func (s *Server) batch(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBodyBytes)

	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   codeInvalidArgument,
			"message": "invalid JSON body: " + err.Error(),
		})
		return
	}

	res, err := s.catalog.Evaluate(c.Param("name"), req.Columns...)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := batchResponse{
		Values: res.Values,
		Errors: make([]*string, res.Len()),
	}
	for i, rowErr := range res.Errors {
		if rowErr != nil {
			msg := rowErr.Error()
			resp.Errors[i] = &msg
		}
	}

	c.JSON(http.StatusOK, resp)
}

// columnCall handles POST /v1/column/:name. The body holds one length-prefixed
// column frame per argument; the response is a single column frame.
func (s *Server) columnCall(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   codeInvalidArgument,
			"message": "failed to read body: " + err.Error(),
		})
		return
	}

	columns, err := column.DecodeColumns(body)
	if err != nil {
		writeError(c, err)
		return
	}

	res, err := s.catalog.Evaluate(c.Param("name"), columns...)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := column.Encode(res.Values, s.columnOpts...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   codeInternal,
			"message": "failed to encode result column: " + err.Error(),
		})
		return
	}

	if failed := res.Failed(); len(failed) > 0 {
		idx := make([]string, len(failed))
		for i, row := range failed {
			idx[i] = strconv.Itoa(row)
		}
		c.Header(FailedRowsHeader, strings.Join(idx, ","))
	}

	c.Data(http.StatusOK, "application/octet-stream", out)
}

// cell handles GET /v1/cells/:grid_num?resolution=1000
func (s *Server) cell(c *gin.Context) {
	g, err := strconv.ParseInt(c.Param("grid_num"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   codeInvalidArgument,
			"message": "grid_num is not a BIGINT: " + c.Param("grid_num"),
		})
		return
	}

	res, err := format.ParseResolution(c.DefaultQuery("resolution", "1000"))
	if err != nil {
		writeError(c, err)
		return
	}

	cell, err := grid.FromGridNumber(g, res)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cell.Feature())
}

// writeError maps a catalog or codec error to an error response.
func writeError(c *gin.Context, err error) {
	status, code := http.StatusBadRequest, codeInvalidArgument
	if errors.Is(err, errs.ErrUnknownFunction) {
		status, code = http.StatusNotFound, codeNotFound
	}

	c.JSON(status, gin.H{
		"error":   code,
		"message": err.Error(),
	})
}
