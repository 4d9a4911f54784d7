package oss

import (
	"testing"

	"PlayTube.com/config"
)

func TestParseObjectUrl(t *testing.T) {
	config.ConfigInfo.Minio.PublicHost = "localhost:9000"

	t.Run("合法对象URL", func(t *testing.T) {
		bucket, object, ok := ParseObjectUrl("http://localhost:9000/videos/abc.mp4")
		if !ok || bucket != "videos" || object != "abc.mp4" {
			t.Errorf("got (%q, %q, %v)", bucket, object, ok)
		}
	})

	t.Run("带多级路径的对象名", func(t *testing.T) {
		bucket, object, ok := ParseObjectUrl("http://localhost:9000/pictures/2026/08/cover.png")
		if !ok || bucket != "pictures" || object != "2026/08/cover.png" {
			t.Errorf("got (%q, %q, %v)", bucket, object, ok)
		}
	})

	t.Run("外部主机不解析", func(t *testing.T) {
		if _, _, ok := ParseObjectUrl("http://evil.example.com/videos/abc.mp4"); ok {
			t.Error("foreign host must not parse")
		}
	})

	t.Run("缺少对象名不解析", func(t *testing.T) {
		if _, _, ok := ParseObjectUrl("http://localhost:9000/videos"); ok {
			t.Error("missing object name must not parse")
		}
		if _, _, ok := ParseObjectUrl("http://localhost:9000/videos/"); ok {
			t.Error("empty object name must not parse")
		}
	})
}

// 启用SSL时公开URL必须是https 且ParseObjectUrl与之对称
func TestObjectUrlScheme(t *testing.T) {
	config.ConfigInfo.Minio.PublicHost = "localhost:9000"

	config.ConfigInfo.Minio.UseSSL = false
	if got := ObjectUrl("videos", "abc.mp4"); got != "http://localhost:9000/videos/abc.mp4" {
		t.Errorf("got %q", got)
	}

	config.ConfigInfo.Minio.UseSSL = true
	defer func() { config.ConfigInfo.Minio.UseSSL = false }()
	url := ObjectUrl("videos", "abc.mp4")
	if url != "https://localhost:9000/videos/abc.mp4" {
		t.Errorf("got %q", url)
	}
	bucket, object, ok := ParseObjectUrl(url)
	if !ok || bucket != "videos" || object != "abc.mp4" {
		t.Errorf("round trip failed: (%q, %q, %v)", bucket, object, ok)
	}
	if _, _, ok := ParseObjectUrl("http://localhost:9000/videos/abc.mp4"); ok {
		t.Error("http url must not parse while SSL is enabled")
	}
}
