package core

import (
	"errors"
	"testing"

	"gitfolio/internal/domain"
	"gitfolio/internal/remote"
	"gitfolio/internal/remote/fake"
	"gitfolio/internal/service"
)

func TestUploadImage(t *testing.T) {
	repo := fake.New()
	s := newTestService(repo)

	url, err := s.UploadImage(ctx, cfg, domain.TypeBlog, "My Screenshot.PNG", "image/png", []byte("pixels"))
	if err != nil {
		t.Fatal(err)
	}

	const path = "images/blogs/1700000000000-r4nd0m-my-screenshot-png.png"
	if want := "https://raw.githubusercontent.com/me/site/main/" + path; url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
	if content, _ := repo.Content(path); content != "pixels" {
		t.Errorf("stored content = %q", content)
	}
}

func TestUploadImageRejections(t *testing.T) {
	s := newTestService(fake.New())

	if _, err := s.UploadImage(ctx, cfg, domain.TypeBlog, "doc.pdf", "application/pdf", []byte("x")); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("non-image: expected ErrInvalidInput, got %v", err)
	}

	big := make([]byte, 5*1024*1024+1)
	if _, err := s.UploadImage(ctx, cfg, domain.TypeBlog, "big.png", "image/png", big); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("oversize: expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteImage(t *testing.T) {
	repo := fake.New()
	repo.Seed("images/projects/123-abc-shot.png", "pixels")
	s := newTestService(repo)

	url := "https://raw.githubusercontent.com/me/site/main/images/projects/123-abc-shot.png"
	if err := s.DeleteImage(ctx, cfg, url); err != nil {
		t.Fatal(err)
	}
	if repo.Exists("images/projects/123-abc-shot.png") {
		t.Error("image still present after delete")
	}
}

func TestDeleteImageJSDelivrURL(t *testing.T) {
	repo := fake.New()
	repo.Seed("images/blogs/123-abc-shot.png", "pixels")
	s := newTestService(repo)

	url := "https://cdn.jsdelivr.net/gh/me/site@main/images/blogs/123-abc-shot.png"
	if err := s.DeleteImage(ctx, cfg, url); err != nil {
		t.Fatal(err)
	}
	if repo.Exists("images/blogs/123-abc-shot.png") {
		t.Error("image still present after delete")
	}
}

func TestDeleteImageUnrecognizedURL(t *testing.T) {
	s := newTestService(fake.New())
	err := s.DeleteImage(ctx, cfg, "https://example.com/not/ours.png")
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteImageAbsent(t *testing.T) {
	s := newTestService(fake.New())
	err := s.DeleteImage(ctx, cfg, "https://raw.githubusercontent.com/me/site/main/images/blogs/gone.png")
	if !errors.Is(err, remote.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateRepository(t *testing.T) {
	s := newTestService(fake.New())

	got, err := s.CreateRepository(ctx, "site", "", true)
	if err != nil {
		t.Fatal(err)
	}
	if got.Repo != "owner/site" || got.Branch != "main" {
		t.Errorf("unexpected config: %+v", got)
	}

	if _, err := s.CreateRepository(ctx, "", "", false); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("empty name: expected ErrInvalidInput, got %v", err)
	}
}
