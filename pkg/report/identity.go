package report

// Identity tells coveralls who a report belongs to. It is either a RepoToken
// or a ServiceToken value, never both. Pointers to either are rejected when
// the report is serialized.
type Identity interface {
	identity()
}

// RepoToken is the secret token of a repository on coveralls.
type RepoToken string

// ServiceToken identifies a CI job on a supported service (travis-ci,
// circleci, semaphore, jenkins, codeship, ...).
type ServiceToken struct {
	Name  string
	JobID string
}

func (RepoToken) identity()    {}
func (ServiceToken) identity() {}

// NewRepoToken returns a repo token identity.
func NewRepoToken(token string) Identity {
	return RepoToken(token)
}

// NewServiceToken returns a CI service identity.
func NewServiceToken(serviceName, jobID string) Identity {
	return ServiceToken{Name: serviceName, JobID: jobID}
}
