package jobs

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/Atul9/coveralls-api/pkg/lumber"
	"github.com/Atul9/coveralls-api/pkg/report"
	"github.com/Atul9/coveralls-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

var digestRegex = regexp.MustCompile(`^[0-9a-f]{32}$`)

type jobRequest struct {
	RepoToken    *string          `json:"repo_token"`
	ServiceName  *string          `json:"service_name"`
	ServiceJobID *string          `json:"service_job_id"`
	SourceFiles  []*report.Source `json:"source_files" binding:"required"`
}

// Handler accepts a coveralls job and answers the way coveralls does.
func Handler(logger lumber.Logger, store *Store, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := new(jobRequest)
		if err := c.ShouldBindJSON(request); err != nil {
			logger.Errorf("error while binding json %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "error": true})
			return
		}
		if err := validate(request); err != nil {
			logger.Warnf("rejecting job: %v", err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error(), "error": true})
			return
		}

		id := utils.GenerateUUID()
		store.Save(summarize(id, request))
		logger.Infof("accepted job %s with %d source files", id, len(request.SourceFiles))
		c.JSON(http.StatusOK, gin.H{
			"message": "Job #" + id,
			"url":     baseURL + "/jobs/" + id,
		})
	}
}

// GetHandler returns the summary of an accepted job.
func GetHandler(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, ok := store.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "job not found", "error": true})
			return
		}
		c.JSON(http.StatusOK, job)
	}
}

func validate(req *jobRequest) error {
	hasToken := req.RepoToken != nil && *req.RepoToken != ""
	hasService := req.ServiceName != nil || req.ServiceJobID != nil
	if hasToken && hasService {
		return errs.ErrInvalidIdentity
	}
	if !hasToken && (req.ServiceName == nil || *req.ServiceName == "" || req.ServiceJobID == nil || *req.ServiceJobID == "") {
		return errs.ErrInvalidIdentity
	}
	for i, src := range req.SourceFiles {
		if src == nil || src.Name == "" {
			return fmt.Errorf("source_files[%d]: name is required", i)
		}
		if !digestRegex.MatchString(src.SourceDigest) {
			return fmt.Errorf("%s: source_digest must be 32 lowercase hex characters", src.Name)
		}
		for line, c := range src.Coverage {
			if c != nil && *c < 0 {
				return fmt.Errorf("%s: negative coverage on line %d", src.Name, line+1)
			}
		}
		if src.Branches != nil && len(*src.Branches)%4 != 0 {
			return fmt.Errorf("%s: branches length %d is not a multiple of 4", src.Name, len(*src.Branches))
		}
	}
	return nil
}
