package init

func registerBlogRoutes(blog *BlogContext) {
	router := blog.globalContainer.APIRouter

	{
		users := router.Group("/users")
		users.GET("", blog.userController.Index()).Name = "blog.users"
		users.POST("", blog.userController.Store()).Name = "blog.users.create"
		users.GET("/:id", blog.userController.Show()).Name = "blog.users.show"
		users.PATCH("/:id", blog.userController.Update()).Name = "blog.users.update"
		users.DELETE("/:id", blog.userController.Delete()).Name = "blog.users.delete"
		users.GET("/:id/posts", blog.userController.IndexPosts()).Name = "blog.users.posts"
		users.POST("/:id/posts", blog.userController.StorePost()).Name = "blog.users.posts.create"
	}

	{
		posts := router.Group("/posts")
		posts.GET("", blog.postController.Index()).Name = "blog.posts"
		posts.POST("", blog.postController.Store()).Name = "blog.posts.create"
		posts.GET("/:id", blog.postController.Show()).Name = "blog.posts.show"
		posts.PATCH("/:id", blog.postController.Update()).Name = "blog.posts.update"
		posts.DELETE("/:id", blog.postController.Delete()).Name = "blog.posts.delete"
	}
}
