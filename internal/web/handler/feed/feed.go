// Package feed serves the RSS feed of blog posts and the XML sitemap.
package feed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
)

const (
	// RSSPath is the path to the RSS feed.
	RSSPath = "/rss.xml"

	// SitemapPath is the path to the sitemap.
	SitemapPath = "/sitemap.xml"

	// maxFeedItems caps the RSS feed length.
	maxFeedItems = 20
)

// staticPages are the public pages listed in the sitemap besides posts.
var staticPages = []string{"/", "/about", "/skills", "/projects", "/certificates", "/blogs", "/resume", "/contact"}

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

type urlSet struct {
	XMLName xml.Name  `xml:"urlset"`
	XMLNS   string    `xml:"xmlns,attr"`
	URLs    []pageURL `xml:"url"`
}

type pageURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Service is the feed handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the feed handler.
var Handler = Service{}

// Init initializes the feed handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(RSSPath, s.RSS)
	app.Get(SitemapPath, s.Sitemap)

	return nil
}

// RSS renders the blog feed, newest first.
func (s *Service) RSS(c *fiber.Ctx) error {
	var posts []models.BlogPost

	err := s.db.WithContext(c.Context()).
		Order("created_at DESC").
		Limit(maxFeedItems).
		Find(&posts).Error
	if err != nil {
		log.Error().Err(err).Msg("rss fetch failed")

		return c.SendStatus(fiber.StatusInternalServerError)
	}

	base := s.baseURL()

	feed := rss{
		Version: "2.0",
		Channel: rssChannel{
			Title:       s.cfg.Title,
			Link:        base,
			Description: s.cfg.Title + " blog",
		},
	}

	for _, p := range posts {
		link := fmt.Sprintf("%s/blogs/%d", base, p.ID)
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       p.Title,
			Link:        link,
			GUID:        link,
			PubDate:     p.CreatedAt.Format(time.RFC1123Z),
			Description: p.Excerpt,
		})
	}

	return s.sendXML(c, feed)
}

// Sitemap renders the sitemap of static pages and posts.
func (s *Service) Sitemap(c *fiber.Ctx) error {
	var posts []models.BlogPost

	err := s.db.WithContext(c.Context()).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		log.Error().Err(err).Msg("sitemap fetch failed")

		return c.SendStatus(fiber.StatusInternalServerError)
	}

	base := s.baseURL()

	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range staticPages {
		set.URLs = append(set.URLs, pageURL{Loc: base + page})
	}

	for _, p := range posts {
		set.URLs = append(set.URLs, pageURL{
			Loc:     fmt.Sprintf("%s/blogs/%d", base, p.ID),
			LastMod: p.UpdatedAt.Format("2006-01-02"),
		})
	}

	return s.sendXML(c, set)
}

func (s *Service) baseURL() string {
	return strings.TrimRight(s.cfg.Webserver.URL, "/")
}

func (s *Service) sendXML(c *fiber.Ctx, v any) error {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("xml encode failed")

		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")

	return c.SendString(xml.Header + string(out))
}
