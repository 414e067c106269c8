// Package server serves the polygon dataset and the static front end.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"secview/internal/config"
)

const readErrorBody = "Error reading JSON file"

const shutdownTimeout = 5 * time.Second

type DataController struct {
	DataFile string
}

// GetData writes the data file back verbatim. A file that cannot be read or
// does not hold valid JSON is reported as a plain-text 500.
func (d *DataController) GetData(c *gin.Context) {
	b, err := os.ReadFile(d.DataFile)
	if err != nil {
		log.Printf("read %s: %v", d.DataFile, err)
		c.String(http.StatusInternalServerError, readErrorBody)
		return
	}
	if !json.Valid(b) {
		log.Printf("read %s: not valid JSON", d.DataFile)
		c.String(http.StatusInternalServerError, readErrorBody)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
}

// NewRouter registers /data and falls back to the public directory for every
// other path.
func NewRouter(cfg config.Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	data := &DataController{DataFile: cfg.DataFile}
	r.GET("/data", data.GetData)

	files := http.FileServer(http.Dir(cfg.PublicDir))
	r.NoRoute(gin.WrapH(files))
	return r
}

// Run serves h on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server is running on http://localhost%s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Printf("shutting down")
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
