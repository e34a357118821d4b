package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 各类上传的存储路径前缀
const (
	PathProfilePictures    = "profile_pictures" // 按 y/m/d 追加日期目录
	PathProgramImages      = "program_images"
	PathCourseImages       = "course_images"
	PathVideos             = "videos"
	PathLessonFiles        = "files"
	PathProjectAttachments = "project_attachments"
)

var (
	// AllowedDocumentExtensions 文档类上传允许的扩展名
	AllowedDocumentExtensions = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".zip", ".rar", ".7zip"}
	// AllowedMediaExtensions 音视频类上传允许的扩展名
	AllowedMediaExtensions = []string{".mp4", ".mkv", ".wmv", ".3gp", ".f4v", ".avi", ".mp3"}
	// AllowedImageExtensions 图片类上传允许的扩展名
	AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}
)
