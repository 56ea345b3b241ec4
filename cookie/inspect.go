package cookie

import (
	"bufio"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bilidl/bilidl/filesystem"
	"github.com/bilidl/bilidl/util"
	"github.com/samber/lo"
	"golang.org/x/net/publicsuffix"
)

// Netscape cookie file columns.
const (
	fieldDomain = iota
	fieldHostOnly
	fieldPath
	fieldSecure
	fieldExpiration
	fieldName
	fieldValue
	fieldCount
)

// httpOnlyPrefix marks HttpOnly cookies in files exported by curl and browser extensions.
const httpOnlyPrefix = "#httponly_"

// SessionCookie is the cookie BiliBili uses for logged-in sessions.
const SessionCookie = "SESSDATA"

// Report summarizes the contents of a cookie file.
type Report struct {
	Path    string
	Cookies int
	Expired int
	Domains []string
	// Session is true when a non-expired BiliBili session cookie is present.
	Session bool
	Jar     *cookiejar.Jar `json:"-"`
}

// String renders a one-line summary.
func (r *Report) String() string {
	session := "no session cookie"
	if r.Session {
		session = "session cookie present"
	}

	return fmt.Sprintf(
		"%s across %s (%d expired, %s)",
		util.Quantify(r.Cookies, "cookie", "cookies"),
		util.Quantify(len(r.Domains), "domain", "domains"),
		r.Expired,
		session,
	)
}

// Inspect parses a Netscape cookie file. Malformed lines are skipped, as yt-dlp does.
func Inspect(path string) (*Report, error) {
	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		return nil, err
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(file.Close)

	var (
		report  = &Report{Path: path, Jar: jar}
		byHost  = make(map[string][]*http.Cookie)
		now     = time.Now()
		scanner = bufio.NewScanner(file)
	)

	for scanner.Scan() {
		c, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}

		report.Cookies++
		if !c.Expires.IsZero() && c.Expires.Before(now) {
			report.Expired++
		} else if c.Name == SessionCookie && strings.HasSuffix(c.Domain, "bilibili.com") {
			report.Session = true
		}

		byHost[c.Domain] = append(byHost[c.Domain], c)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read cookie file: %w", err)
	}

	for domain, cookies := range byHost {
		u, err := url.Parse("https://" + strings.TrimPrefix(domain, "."))
		if err != nil {
			continue
		}
		jar.SetCookies(u, cookies)
	}

	report.Domains = lo.Keys(byHost)
	sort.Strings(report.Domains)

	return report, nil
}

func parseLine(line string) (*http.Cookie, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) != fieldCount {
		return nil, false
	}

	domain := strings.ToLower(parts[fieldDomain])
	httpOnly := strings.HasPrefix(domain, httpOnlyPrefix)
	domain = strings.TrimPrefix(domain, httpOnlyPrefix)

	if domain == "" || strings.HasPrefix(domain, "#") {
		return nil, false
	}

	// Quoted JSON values are not valid cookie values and make net/http log noise.
	if strings.Contains(parts[fieldValue], `"`) {
		return nil, false
	}

	c := &http.Cookie{
		Domain:   domain,
		Path:     parts[fieldPath],
		Secure:   strings.EqualFold(parts[fieldSecure], "true"),
		Name:     parts[fieldName],
		Value:    parts[fieldValue],
		HttpOnly: httpOnly,
	}

	if expire, err := strconv.ParseInt(parts[fieldExpiration], 10, 64); err == nil && expire > 0 {
		c.Expires = time.Unix(expire, 0)
	}

	return c, true
}
