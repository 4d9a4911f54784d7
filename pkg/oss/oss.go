package oss

import (
	"context"
	"fmt"
	"path"
	"strings"

	"PlayTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const (
	VideoBucket   = "video"
	PictureBucket = "picture"
)

func ensureBucket(ctx context.Context, bucketName string) error {
	location := "us-east-1" // MinIO默认区域
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

// UploadVideo 将暂存的本地视频文件上传到MinIO 返回可访问的URL
func UploadVideo(ctx context.Context, localPath string) (string, error) {
	if err := ensureBucket(ctx, VideoBucket); err != nil {
		return "", err
	}
	objectName := "video/" + uuid.New().String() + path.Ext(localPath)
	_, err := minioClient.FPutObject(ctx, VideoBucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		hlog.Info(err)
		return "", err
	}
	return ObjectUrl(VideoBucket, objectName), nil
}

// UploadImage 上传封面/头像等图片文件
func UploadImage(ctx context.Context, localPath string) (string, error) {
	if err := ensureBucket(ctx, PictureBucket); err != nil {
		return "", err
	}
	objectName := "image/" + uuid.New().String() + path.Ext(localPath)
	_, err := minioClient.FPutObject(ctx, PictureBucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		hlog.Info(err)
		return "", err
	}
	return ObjectUrl(PictureBucket, objectName), nil
}

// DeleteByUrl 根据公开URL删除对象 删除失败只记录日志
func DeleteByUrl(ctx context.Context, url string) error {
	bucketName, objectName, ok := ParseObjectUrl(url)
	if !ok {
		return fmt.Errorf("not a managed object url: %s", url)
	}
	err := minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		hlog.Errorf("Failed to delete %s/%s: %v", bucketName, objectName, err)
		return err
	}
	return nil
}

func publicScheme() string {
	if config.ConfigInfo.Minio.UseSSL {
		return "https"
	}
	return "http"
}

func ObjectUrl(bucketName, objectName string) string {
	return fmt.Sprintf("%s://%s/%s/%s", publicScheme(), config.ConfigInfo.Minio.PublicHost, bucketName, objectName)
}

// ParseObjectUrl 从公开URL中反解出bucket和object名
func ParseObjectUrl(url string) (bucketName, objectName string, ok bool) {
	prefix := fmt.Sprintf("%s://%s/", publicScheme(), config.ConfigInfo.Minio.PublicHost)
	if !strings.HasPrefix(url, prefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(url, prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
