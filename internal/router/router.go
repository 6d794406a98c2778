package router

import (
	"MCQ-PDF-Exam-Backend/internal/api"
	"MCQ-PDF-Exam-Backend/internal/middleware"
	"net/http"
	"path"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Options struct {
	AllowedOrigins []string
	StaticDir      string
	// MaxMultipartMemory is the part of a multipart form kept in memory.
	MaxMultipartMemory int64
}

func SetupRouter(examHandler *api.ExamHandler, opts Options, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(log), middleware.Recovery(log))
	if opts.MaxMultipartMemory > 0 {
		r.MaxMultipartMemory = opts.MaxMultipartMemory
	}

	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	r.POST("/upload", examHandler.UploadHandler)
	r.GET("/exam", examHandler.GetExamHandler)
	r.POST("/submit", examHandler.SubmitHandler)
	r.POST("/save-answers", examHandler.SaveAnswersHandler)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	r.NoRoute(staticHandler(opts.StaticDir))

	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.DefaultConfig()
	allowAll := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AllowHeaders = append(config.AllowHeaders, "Content-Type", middleware.RequestIDHeader)
	config.ExposeHeaders = append(config.ExposeHeaders, middleware.RequestIDHeader)
	return config
}

// staticHandler serves the frontend bundle for any GET that matched no API
// route; "/" maps to index.html. Directories are never listed.
func staticHandler(dir string) gin.HandlerFunc {
	if dir == "" {
		dir = "./dist"
	}
	root := gin.Dir(dir, false)
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		name := path.Clean("/" + c.Request.URL.Path)
		lookup := name
		if name == "/" || name == "/index.html" {
			// http.FileServer redirects /index.html to the directory.
			name, lookup = "/", "/index.html"
		}
		if !isFile(root, lookup) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.FileFromFS(name, root)
	}
}

func isFile(fs http.FileSystem, name string) bool {
	f, err := fs.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
